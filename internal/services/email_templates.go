package services

import (
	"fmt"
	"time"
)

// alertEmailHTML is the shared shell for herd alerts. Placeholders:
// title, primary color, accent color, icon, alert title, recipient name,
// secondary color, primary color, description, accent color, date string,
// details block.
const alertEmailHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f5f7fa;">
  <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="background-color: #f5f7fa;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" style="max-width: 600px; background-color: #ffffff; border-radius: 12px; box-shadow: 0 4px 20px rgba(0,0,0,0.1); overflow: hidden;">
          <tr>
            <td style="background: linear-gradient(135deg, %s 0%%, %s 100%%); padding: 30px 40px; text-align: center;">
              <div style="background-color: rgba(255,255,255,0.2); width: 70px; height: 70px; border-radius: 50%%; display: inline-flex; align-items: center; justify-content: center; margin-bottom: 15px;">
                <span style="font-size: 32px;">%s</span>
              </div>
              <h1 style="color: #ffffff; font-size: 26px; font-weight: 600; margin: 0;">⚠️ Alerta del Sistema</h1>
              <p style="color: rgba(255,255,255,0.9); font-size: 16px; margin: 8px 0 0 0; font-weight: 500;">%s</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              <p style="font-size: 18px; color: #2c3e50; margin: 0; font-weight: 500;">Hola <strong>%s</strong> 👋</p>
              <p style="font-size: 16px; color: #5a6c7d; margin: 10px 0 30px 0; line-height: 1.5;">Te informamos sobre una actividad importante en tu sistema ganadero.</p>
              <div style="background-color: %s; border: 2px solid %s40; border-radius: 12px; padding: 25px; margin-bottom: 30px;">
                <h3 style="color: #2c3e50; font-size: 18px; font-weight: 600; margin: 0 0 12px 0;">📋 Detalles de la Alerta</h3>
                <p style="color: #2c3e50; font-size: 16px; margin: 0 0 25px 0; line-height: 1.6;">%s</p>
                <h4 style="color: #2c3e50; font-size: 16px; font-weight: 600; margin: 0 0 8px 0;">📅 Fecha Programada</h4>
                <p style="color: %s; font-size: 17px; font-weight: 600; margin: 0 0 25px 0;">%s</p>
                <div style="background-color: rgba(255,255,255,0.7); border-radius: 8px; padding: 20px;">
                  <h4 style="color: #2c3e50; font-size: 16px; font-weight: 600; margin: 0 0 15px 0;">📊 Información Adicional</h4>
                  %s
                </div>
              </div>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f8f9fa; padding: 30px 40px; text-align: center; border-top: 1px solid #e9ecef;">
              <span style="font-size: 24px;">🐄</span>
              <h3 style="color: #2c3e50; font-size: 18px; font-weight: 600; margin: 8px 0 5px 0;">ControlBovino</h3>
              <p style="color: #6c757d; font-size: 14px; margin: 0 0 15px 0;">Tu aliado para llevar el control de tu ganado</p>
              <p style="color: #6c757d; font-size: 13px; margin: 0;">Este es un mensaje automático del sistema. No respondas a este correo.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const resetCodeEmailHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #2c3e50; background-color: #f5f7fa; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 12px; }
.header { font-size: 24px; font-weight: bold; color: #2E7D32; margin-bottom: 15px; }
.code { font-size: 36px; font-weight: bold; letter-spacing: 8px; color: #2E7D32; background-color: #f1f3f5; padding: 15px 20px; border-radius: 5px; display: inline-block; margin: 20px 0; }
.footer { margin-top: 20px; font-size: 12px; color: #6c757d; text-align: center; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">Restablece tu contraseña</div>
    <p>Hola %s, usa el siguiente código para restablecer tu contraseña. El código vence en %d minutos.</p>
    <div class="code">%s</div>
    <div class="footer">© %d ControlBovino. Este es un mensaje automático, no respondas a este correo.</div>
  </div>
</body>
</html>`

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// formatSpanishDate renders "lunes 02 de junio de 2025".
func formatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%s %02d de %s de %d",
		spanishWeekdays[int(t.Weekday())], t.Day(), spanishMonths[int(t.Month())-1], t.Year())
}
