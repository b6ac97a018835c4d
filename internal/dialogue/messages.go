package dialogue

import (
	"fmt"
	"strings"

	"museum-chat/internal/catalog"
)

const (
	msgGreeting      = "Ciao! Sono l'assistente virtuale del Museo del Clima. Come posso aiutarti? Puoi chiedermi informazioni, orari o prenotare i biglietti."
	msgAskDate       = "Perfetto, iniziamo la prenotazione! Per quale giorno desideri visitare il museo? (formato GG/MM/AAAA)"
	msgRetryDate     = "Per favore, inserisci la data nel formato GG/MM/AAAA"
	msgAskTime       = "Ottimo! A che ora preferisci? (es. 14:30)"
	msgRetryTime     = "Per favore, inserisci l'ora nel formato HH:MM"
	msgRetryQuantity = "Per favore, inserisci un numero valido di biglietti."
	msgRetryPayment  = "Per favore, seleziona uno dei metodi di pagamento disponibili"
	msgAborted       = "Mi dispiace, non sono riuscito a completare la prenotazione dopo troppi tentativi. Se vuoi riprovare, scrivi \"prenota\"."
	msgIssueFailed   = "Mi dispiace, si è verificato un errore durante l'emissione del biglietto. Riprova a indicare il metodo di pagamento."
)

func ticketListing(tickets *catalog.Tickets) string {
	lines := make([]string, 0, len(tickets.All()))
	for _, t := range tickets.All() {
		lines = append(lines, fmt.Sprintf("%s: €%d", t.Name, t.Price))
	}
	return strings.Join(lines, "\n")
}

func paymentListing(methods *catalog.PaymentMethods) string {
	lines := make([]string, 0, len(methods.All()))
	for _, m := range methods.All() {
		lines = append(lines, fmt.Sprintf("%s %s", m.Icon, m.Name))
	}
	return strings.Join(lines, "\n")
}

func msgAskTicketType(tickets *catalog.Tickets) string {
	return "Perfetto! Scegli il tipo di biglietto:\n" + ticketListing(tickets)
}

func msgRetryTicketType(tickets *catalog.Tickets) string {
	return "Per favore, scegli uno dei seguenti tipi di biglietto:\n" + ticketListing(tickets)
}

func msgAskQuantity(t catalog.TicketType) string {
	return fmt.Sprintf("Hai scelto %s (€%d). Quanti biglietti vuoi acquistare?", t.Name, t.Price)
}

func msgAskPayment(quantity int, ticketType string, methods *catalog.PaymentMethods) string {
	return fmt.Sprintf("Ottimo! Hai selezionato %d biglietto/i %s.\nScegli il metodo di pagamento:\n%s",
		quantity, ticketType, paymentListing(methods))
}

func msgCompleted(total int) string {
	return fmt.Sprintf("Prenotazione completata! Totale: €%d\nIl tuo QR code è stato generato e sarà disponibile nella sezione \"I tuoi Biglietti\".", total)
}
