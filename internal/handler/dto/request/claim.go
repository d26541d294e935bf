package request

type CreateClaimRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}

type PaymentWebhookRequest struct {
	ClaimID      string `json:"claim_id" binding:"required,uuid"`
	Outcome      string `json:"outcome" binding:"required,oneof=succeeded failed"`
	ProcessorRef string `json:"processor_ref"`
}
