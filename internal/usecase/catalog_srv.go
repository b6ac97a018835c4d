package usecase

import (
	"museum-chat/internal/catalog"
	"museum-chat/internal/dto/response"
)

type CatalogService interface {
	TicketTypes() []*response.TicketTypeResponse
	PaymentMethods() []*response.PaymentMethodResponse
}

type catalogService struct {
	tickets  *catalog.Tickets
	payments *catalog.PaymentMethods
}

func NewCatalogService(tickets *catalog.Tickets, payments *catalog.PaymentMethods) CatalogService {
	if tickets == nil {
		tickets = catalog.DefaultTickets()
	}
	if payments == nil {
		payments = catalog.DefaultPaymentMethods()
	}
	return &catalogService{tickets: tickets, payments: payments}
}

func (s *catalogService) TicketTypes() []*response.TicketTypeResponse {
	all := s.tickets.All()
	out := make([]*response.TicketTypeResponse, 0, len(all))
	for _, t := range all {
		out = append(out, &response.TicketTypeResponse{Name: t.Name, Price: t.Price})
	}
	return out
}

func (s *catalogService) PaymentMethods() []*response.PaymentMethodResponse {
	all := s.payments.All()
	out := make([]*response.PaymentMethodResponse, 0, len(all))
	for _, m := range all {
		out = append(out, &response.PaymentMethodResponse{ID: m.ID, Name: m.Name, Icon: m.Icon})
	}
	return out
}
