// Package dto define los payloads que viajan del orquestador al renderizador
// de documentos. Son datos ya resueltos y formateados para presentación; el
// renderizador no consulta configuración ni estado.
package dto

// Document marca los payloads que el renderizador sabe producir. El puerto
// DocumentRenderer expone una sola operación render(payload, destino); el
// adaptador concreto distingue por tipo.
type Document interface {
	documentKind() string
}

func (*InvoicePayload) documentKind() string   { return "invoice" }
func (*StatementPayload) documentKind() string { return "statement" }
