package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// OTPEmailSubject is the fixed subject line for verification emails.
const OTPEmailSubject = "S3TS Account Registration - Verification Code"

var otpEmailTmpl = template.Must(template.New("otp_email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #0A1929 0%, #1A2F3F 100%); padding: 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px;">findMe</h1>
      <p style="color: #ffffff; margin: 10px 0 0 0; font-size: 14px;">School Safety &amp; Security Tracking System</p>
    </div>

    <div style="padding: 40px 30px;">
      <h2 style="color: #333333; margin: 0 0 20px 0; font-size: 24px;">Welcome, {{.Name}}!</h2>

      <p style="color: #666666; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
        Thank you for registering with S3TS. To complete your registration, please use the verification code below:
      </p>

      <div style="background-color: #f8f9fa; padding: 30px; text-align: center; border-radius: 10px; margin: 30px 0;">
        <div style="font-size: 36px; font-weight: bold; letter-spacing: 10px; color: #0A1929; font-family: 'Courier New', monospace;">
          {{.Code}}
        </div>
      </div>

      <div style="background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px;">
        <p style="margin: 0; color: #856404; font-size: 14px;">
          <strong>Important:</strong> This code will expire in 10 minutes.
        </p>
      </div>

      <p style="color: #666666; font-size: 14px; line-height: 1.6; margin: 20px 0 0 0;">
        If you didn't request this code, please ignore this email or contact our support team if you have concerns.
      </p>
    </div>

    <div style="background-color: #f8f9fa; padding: 20px 30px; border-top: 1px solid #e9ecef;">
      <p style="margin: 0; color: #999999; font-size: 12px; text-align: center;">
        &copy; 2024 findMe. All rights reserved.<br>
        This is an automated message, please do not reply.
      </p>
    </div>
  </div>
</body>
</html>
`))

// BuildOTPEmail renders the verification email body for the given recipient
// name and code. It has no side effects.
func BuildOTPEmail(name, code string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Name string
		Code string
	}{Name: name, Code: code}
	if err := otpEmailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render otp email: %w", err)
	}
	return buf.String(), nil
}
