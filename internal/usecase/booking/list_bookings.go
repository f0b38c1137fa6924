package booking

import (
	"context"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	filter domain.BookingFilter,
) ([]dto.BookingListDTO, error) {
	return uc.repo.ListBookings(ctx, filter)
}
