package usecase

import (
	"encoding/json"
	"fmt"

	"museum-chat/internal/data/entity"
	"museum-chat/internal/dialogue"
	"museum-chat/internal/dto/response"
)

func toTicketEntity(t *dialogue.Ticket) (*entity.Ticket, error) {
	payload, err := json.Marshal(t.QRPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}

	return &entity.Ticket{
		Record:         entity.Record{ID: t.ID, CreatedAt: t.CreatedAt},
		ConversationID: t.ConversationID,
		VisitDate:      t.Date,
		VisitTime:      t.Time,
		TicketType:     t.TicketType,
		Quantity:       t.Quantity,
		PaymentMethod:  t.PaymentMethod,
		Total:          t.Total,
		QRPayload:      payload,
	}, nil
}

func fromDialogueTicket(t *dialogue.Ticket) *response.TicketResponse {
	return &response.TicketResponse{
		ID:             t.ID.String(),
		ConversationID: t.ConversationID.String(),
		Date:           t.Date,
		Time:           t.Time,
		Type:           t.Type,
		TicketType:     t.TicketType,
		Quantity:       t.Quantity,
		PaymentMethod:  t.PaymentMethod,
		Total:          t.Total,
		QRPayload: response.QRPayloadResponse{
			ID:      t.QRPayload.ID,
			Date:    t.QRPayload.Date,
			Time:    t.QRPayload.Time,
			Tickets: t.QRPayload.Tickets,
			Total:   t.QRPayload.Total,
		},
		QRCode:    t.QRCode,
		CreatedAt: t.CreatedAt,
	}
}

func toTicketResponse(t *entity.Ticket, qrCode string) (*response.TicketResponse, error) {
	var payload response.QRPayloadResponse
	if err := json.Unmarshal(t.QRPayload, &payload); err != nil {
		return nil, fmt.Errorf("decode qr payload of ticket %s: %w", t.ID, err)
	}

	return &response.TicketResponse{
		ID:             t.ID.String(),
		ConversationID: t.ConversationID.String(),
		Date:           t.VisitDate,
		Time:           t.VisitTime,
		Type:           fmt.Sprintf("%dx %s", t.Quantity, t.TicketType),
		TicketType:     t.TicketType,
		Quantity:       t.Quantity,
		PaymentMethod:  t.PaymentMethod,
		Total:          t.Total,
		QRPayload:      payload,
		QRCode:         qrCode,
		CreatedAt:      t.CreatedAt,
	}, nil
}

func toOpeningHourResponse(h *entity.OpeningHour) *response.OpeningHourResponse {
	return &response.OpeningHourResponse{
		ID:       h.ID,
		Giorno:   h.Day,
		Apertura: h.Opens,
		Chiusura: h.Closes,
	}
}

func toReservationResponse(r *entity.Reservation) *response.ReservationResponse {
	return &response.ReservationResponse{
		ID:        r.ID.String(),
		Nome:      r.Name,
		Giorno:    r.Day,
		Persone:   r.People,
		Timestamp: r.Timestamp,
	}
}
