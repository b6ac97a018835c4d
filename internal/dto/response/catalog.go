package response

type TicketTypeResponse struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
