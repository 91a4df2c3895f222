package models

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// CreateBlockRequest request to reserve time off for a barber
type CreateBlockRequest struct {
	BarberID int64     `json:"barberoId"`
	Start    time.Time `json:"inicio"`
	End      time.Time `json:"fin"`
	Reason   *string   `json:"motivo,omitempty"`
}

// UpdateBlockRequest partial update of a bloqueo. Nil fields stay unchanged.
type UpdateBlockRequest struct {
	Start  *time.Time `json:"inicio,omitempty"`
	End    *time.Time `json:"fin,omitempty"`
	Reason *string    `json:"motivo,omitempty"`
}

// ListBlocksRequest range listing filter for one barber
type ListBlocksRequest struct {
	BarberID int64     `json:"barberoId"`
	From     time.Time `json:"desde"`
	To       time.Time `json:"hasta"`
}

// BlockResponse one bloqueo in API form
type BlockResponse struct {
	ID       int64     `json:"id"`
	BarberID int64     `json:"barberoId"`
	Start    time.Time `json:"inicio"`
	End      time.Time `json:"fin"`
	Reason   *string   `json:"motivo,omitempty"`

	CreatedAt time.Time `json:"creadoEn"`
}

// BlockListResponse listing of bloqueos
type BlockListResponse struct {
	Blocks []*BlockResponse `json:"bloqueos"`
	Total  int              `json:"total"`
}

// FromDomainBlock converts a domain bloqueo to API form.
func FromDomainBlock(b *domain.Block) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		BarberID:  b.BarberID,
		Start:     b.Start,
		End:       b.End,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList converts a listing of bloqueos.
func FromDomainBlockList(items []*domain.Block) *BlockListResponse {
	out := make([]*BlockResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromDomainBlock(b))
	}
	return &BlockListResponse{Blocks: out, Total: len(out)}
}
