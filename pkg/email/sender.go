package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"github.com/go-playground/validator/v10"
)

//go:embed templates/*
var templates embed.FS

var validate = validator.New()

type SendEmailInput struct {
	To        string
	Subject   string
	Body      string
	PlainText string
}

type Sender interface {
	Send(input SendEmailInput) error
}

// GenerateBodyFromHTML renders templates/<templateFileName> into Body.
func (e *SendEmailInput) GenerateBodyFromHTML(templateFileName string, data interface{}) error {
	t, err := template.ParseFS(templates, "templates/"+templateFileName)
	if err != nil {
		return fmt.Errorf("parse file failed: %w", err)
	}

	buf := new(bytes.Buffer)
	if err = t.Execute(buf, data); err != nil {
		return fmt.Errorf("email data injection failed: %w", err)
	}

	e.Body = buf.String()

	return nil
}

// GeneratePlainTextFromTemplate renders templates/<templateFileName> into PlainText.
func (e *SendEmailInput) GeneratePlainTextFromTemplate(templateFileName string, data interface{}) error {
	t, err := textTemplate.ParseFS(templates, "templates/"+templateFileName)
	if err != nil {
		return fmt.Errorf("parse file failed: %w", err)
	}

	buf := new(bytes.Buffer)
	if err = t.Execute(buf, data); err != nil {
		return fmt.Errorf("email data injection failed: %w", err)
	}

	e.PlainText = buf.String()

	return nil
}

func (e *SendEmailInput) Validate() error {
	if e.To == "" {
		return errors.New("empty to")
	}

	if e.Subject == "" || (e.Body == "" && e.PlainText == "") {
		return errors.New("empty subject/body")
	}

	if !IsEmailValid(e.To) {
		return errors.New("invalid to email")
	}

	return nil
}

func IsEmailValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}
