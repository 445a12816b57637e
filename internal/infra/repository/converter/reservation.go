package converter

import (
	"encoding/json"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) (pgq.Reservation, error) {
	guests := res.Guests()
	payload, err := json.Marshal(guests)
	if err != nil {
		return pgq.Reservation{}, errs.Wrap(err, "encode guests")
	}

	phones := make([]string, 0, len(guests))
	for _, g := range guests {
		if digits := client.NormalizePhone(g.Phone); digits != "" {
			phones = append(phones, digits)
		}
	}

	return pgq.Reservation{
		ID:            res.ID(),
		ClientID:      res.ClientID(),
		ClientName:    res.ClientName(),
		Date:          pgconv.DateToPg(res.Date()),
		StartHour:     int32(res.StartHour()),
		Duration:      int32(res.Duration()),
		LaneCount:     int32(res.LaneCount()),
		TotalCents:    res.TotalValue().Cents(),
		Status:        res.Status().String(),
		PaymentStatus: res.PaymentStatus().String(),
		EventType:     res.EventType(),
		PeopleCount:   int32(res.PeopleCount()),
		Observations:  res.Observations(),
		Guests:        payload,
		GuestPhones:   phones,
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}, nil
}

func ReservationToDomain(row pgq.Reservation) (*reservation.Reservation, error) {
	var guests []reservation.Guest
	if len(row.Guests) > 0 {
		if err := json.Unmarshal(row.Guests, &guests); err != nil {
			return nil, errs.Wrap(err, "decode guests")
		}
	}

	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:            row.ID,
		ClientID:      row.ClientID,
		ClientName:    row.ClientName,
		Date:          pgconv.DateFromPg(row.Date),
		StartHour:     int(row.StartHour),
		Duration:      int(row.Duration),
		LaneCount:     int(row.LaneCount),
		TotalValue:    money.New(row.TotalCents),
		Status:        reservation.Status(row.Status),
		PaymentStatus: reservation.PaymentStatus(row.PaymentStatus),
		Details: reservation.Details{
			EventType:    row.EventType,
			PeopleCount:  int(row.PeopleCount),
			Observations: row.Observations,
			Guests:       guests,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	})
}

func ReservationsToDomain(rows []pgq.Reservation) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
