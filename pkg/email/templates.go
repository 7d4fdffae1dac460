package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

// template names
const (
	TemplateVerification = "verification"
	TemplateNewMovie     = "new_movie"
)

// renderTemplate renders an email template with the given data
func renderTemplate(templateName string, data interface{}) (EmailBody, error) {
	switch templateName {
	case TemplateVerification:
		return renderVerificationTemplate(data)
	case TemplateNewMovie:
		return renderNewMovieTemplate(data)
	default:
		return EmailBody{}, fmt.Errorf("unknown template: %s", templateName)
	}
}

// getTemplateSubject returns the subject for a given template
func getTemplateSubject(templateName string) string {
	switch templateName {
	case TemplateVerification:
		return "Elektron pochtangizni tasdiqlang!"
	case TemplateNewMovie:
		return "Yangi film qo'shildi!"
	default:
		return "MovieHub"
	}
}

// renderVerificationTemplate renders the email verification template
func renderVerificationTemplate(data interface{}) (EmailBody, error) {
	verifyData, ok := data.(VerificationTemplateData)
	if !ok {
		return EmailBody{}, fmt.Errorf("invalid template data type for verification")
	}

	return render(verificationTemplateHTML, verificationTemplateText, verifyData)
}

// renderNewMovieTemplate renders the new-movie broadcast template
func renderNewMovieTemplate(data interface{}) (EmailBody, error) {
	movieData, ok := data.(NewMovieTemplateData)
	if !ok {
		return EmailBody{}, fmt.Errorf("invalid template data type for new movie")
	}

	return render(newMovieTemplateHTML, newMovieTemplateText, movieData)
}

func render(htmlSrc, textSrc string, data interface{}) (EmailBody, error) {
	htmlTmpl, err := template.New("html").Parse(htmlSrc)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var htmlBuf bytes.Buffer
	err = htmlTmpl.Execute(&htmlBuf, data)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	textTmpl, err := texttemplate.New("text").Parse(textSrc)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to parse text template: %w", err)
	}

	var textBuf bytes.Buffer
	err = textTmpl.Execute(&textBuf, data)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to execute text template: %w", err)
	}

	return EmailBody{
		HTML: strings.TrimSpace(htmlBuf.String()),
		Text: strings.TrimSpace(textBuf.String()),
	}, nil
}
