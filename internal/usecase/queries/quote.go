package queries

import (
	"context"
	"time"

	"room-pricing/internal/domain/pricing"
	"room-pricing/internal/infra"
	"room-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuoteParams struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
	Source    string
}

type QuoteQueries interface {
	QuotePrice(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	store      RoomReadStore
	calculator *pricing.Calculator
}

func NewQuoteQueries(store RoomReadStore, calculator *pricing.Calculator) QuoteQueries {
	return &quoteQueriesImpl{store: store, calculator: calculator}
}

// QuotePrice resolves the room and runs the pricing engine. Engine-level
// validation failures are not errors: they come back inside the view with
// OK=false, mirroring the calculator's result contract. Only a missing room
// or a store failure surfaces as an error.
func (q *quoteQueriesImpl) QuotePrice(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	room, err := q.store.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := q.calculator.Calculate(pricing.BookingRequest{
		RoomID: params.RoomID,
		Start:  params.StartTime,
		End:    params.EndTime,
		Source: params.Source,
	}, room.PricingSpec())

	view := &QuoteView{
		ID:           uuid.New(),
		RoomID:       room.ID,
		RoomName:     room.Name,
		RoomCategory: room.Category,
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		OK:           result.OK,
	}
	if result.OK {
		view.Breakdown = toBreakdownView(result.Breakdown)
	} else {
		msg := result.ErrorMessageVi
		view.ErrorMessageVi = &msg
	}
	return view, nil
}

func toBreakdownView(b *pricing.PriceBreakdown) *BreakdownView {
	view := &BreakdownView{
		TotalVnd:   b.TotalVnd,
		Components: make([]ComponentView, len(b.Components)),
		SummaryVi:  b.SummaryVi,
		Warnings:   b.Warnings,
	}
	if view.Warnings == nil {
		view.Warnings = []string{}
	}
	for i, comp := range b.Components {
		cv := ComponentView{
			Kind:          string(comp.Kind),
			DescriptionVi: comp.DescriptionVi,
			Day:           comp.Day,
			IsWeekend:     comp.IsWeekend,
			AmountVnd:     comp.AmountVnd,
			Hours:         comp.Hours,
		}
		if comp.ComboType != nil {
			t := string(*comp.ComboType)
			cv.ComboType = &t
		}
		view.Components[i] = cv
	}
	return view
}
