package soapgen

import (
	"fmt"

	"workday-mapper/internal/schema"
)

const (
	xmlDeclaration   = `<?xml version="1.0" encoding="UTF-8"?>`
	soapEnvNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	wsseNamespace    = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
	passwordTextType = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-username-token-profile-1.0#PasswordText"
)

// Credential placeholders written into the security header.
const (
	UsernamePlaceholder = "{{ISU_USERNAME}}"
	PasswordPlaceholder = "{{ISU_PASSWORD}}"
)

func (g *Generator) envelope(svc *schema.Service, r *renderer) string {
	r.indent = g.config.Indent

	writeEnvelopeHead(&r.lineWriter, svc.Prefix, svc.Namespace)

	req := r.tag(svc.RequestElement())
	r.line(2, fmt.Sprintf(`<%s %s="%s">`, req, r.tag("version"), Escape(g.config.version(svc))))
	r.elements(svc.Template, 3)
	r.line(2, "</"+req+">")

	writeEnvelopeTail(&r.lineWriter)

	return r.String()
}

// generic is the envelope written when no template exists for a service.
func (g *Generator) generic() string {
	w := &lineWriter{indent: g.config.Indent}

	writeEnvelopeHead(w, schema.DefaultPrefix, schema.DefaultNamespace)
	w.comment(2, "Generic SOAP request - operation-specific XML not available")
	w.comment(2, "Add the operation to the service catalog for proper XML generation")
	writeEnvelopeTail(w)

	return w.String()
}

func writeEnvelopeHead(w *lineWriter, prefix, namespace string) {
	w.line(0, xmlDeclaration)
	w.line(0, fmt.Sprintf(`<soapenv:Envelope xmlns:soapenv="%s" xmlns:%s="%s">`, soapEnvNamespace, prefix, namespace))
	w.line(1, "<soapenv:Header>")
	w.line(2, fmt.Sprintf(`<wsse:Security soapenv:mustUnderstand="1" xmlns:wsse="%s">`, wsseNamespace))
	w.line(3, "<wsse:UsernameToken>")
	w.line(4, "<wsse:Username>"+UsernamePlaceholder+"</wsse:Username>")
	w.line(4, fmt.Sprintf(`<wsse:Password Type="%s">%s</wsse:Password>`, passwordTextType, PasswordPlaceholder))
	w.line(3, "</wsse:UsernameToken>")
	w.line(2, "</wsse:Security>")
	w.line(1, "</soapenv:Header>")
	w.line(1, "<soapenv:Body>")
}

func writeEnvelopeTail(w *lineWriter) {
	w.line(1, "</soapenv:Body>")
	w.line(0, "</soapenv:Envelope>")
}
