package httperr

import "strings"

var messages = map[string]string{
	"invalid_request":              "Dados inválidos.",
	"invalid_id":                   "Identificador inválido.",
	"invalid_date":                 "Data inválida.",
	"invalid_time":                 "Horário inválido.",
	"invalid_service":              "Por favor, preencha o nome e um preço válido.",
	"invalid_appointment":          "Preencha o cliente e o serviço do agendamento.",
	"invalid_status":               "Status inválido.",
	"invalid_status_transition":    "O status do agendamento não pode voltar.",
	"invalid_payment_method":       "Forma de pagamento inválida.",
	"invalid_theme":                "Tema inválido.",
	"service_not_found":            "Serviço inválido!",
	"appointment_not_found":        "Agendamento não encontrado.",
	"transaction_not_found":        "Transação não encontrada.",
	"draft_not_found":              "Atendimento não encontrado.",
	"payment_not_found":            "Forma de pagamento não encontrada.",
	"appointment_already_attended": "Este agendamento já foi atendido.",
	"no_service_selected":          "Selecione ao menos um serviço para continuar.",
	"client_name_required":         "Por favor, preencha o nome do cliente e selecione ao menos um serviço.",
	"client_name_fixed":            "O cliente de um agendamento não pode ser alterado.",
	"payment_limit":                "São permitidas no máximo duas formas de pagamento.",
	"last_payment":                 "É necessária ao menos uma forma de pagamento.",
	"payment_mismatch":             "O total pago (R$ %s) não corresponde ao valor final (R$ %s). Ajuste os valores.",
	"wrong_step":                   "Conclua a seleção de serviços antes do pagamento.",
	"export_failed":                "Não foi possível gerar o relatório.",
}

// Message returns the user-facing text for a business code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Erro desconhecido."
}

// StatusFor maps a business code to an HTTP status.
func StatusFor(code string) int {
	if strings.HasSuffix(code, "_not_found") {
		return 404
	}
	return 400
}
