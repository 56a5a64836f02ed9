package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// SuspensionHTML 管理员调整等级为处罚等级时发送的通知正文
func SuspensionHTML(nickname, label string) string {
	return fmt.Sprintf(`<p>%s 님,</p><p>회원님의 계정이 <b>%s</b> 상태로 변경되었습니다.</p><p>문의 사항은 고객센터를 이용해주세요.</p>`, nickname, label)
}

// SuspensionLabel 处罚等级的邮件文案
func SuspensionLabel(role string) string {
	switch role {
	case "ROLE_A":
		return "7일 정지"
	case "ROLE_B":
		return "30일 정지"
	case "ROLE_C":
		return "영구 정지"
	case "ROLE_D":
		return "탈퇴 처리"
	default:
		return ""
	}
}
