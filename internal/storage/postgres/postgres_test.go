//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondInvitation_Accept(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	invitee := mustUser(t, s, "invitee")
	eventID := mustEvent(t, s, organizer, "Launch", fixedNow.Add(48*time.Hour))

	inv, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "bring friends")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationPending, inv.Status)

	got, err := s.RespondInvitation(ctx, inv.ID, invitee, models.ActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationAccepted, got.Status)
	require.NotNil(t, got.RespondedAt)
	assert.True(t, fixedNow.Equal(*got.RespondedAt))

	guests, err := s.GuestsForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, invitee, guests[0].UserID)
	require.NotNil(t, guests[0].InvitationID)
	assert.Equal(t, inv.ID, *guests[0].InvitationID)
	require.NotNil(t, guests[0].RSVP)
	assert.Equal(t, models.RSVPPending, guests[0].RSVP.Status)
	assert.Equal(t, models.DefaultNumberOfGuests, guests[0].RSVP.NumberOfGuests)
}

func TestRespondInvitation_Decline(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	invitee := mustUser(t, s, "invitee")
	eventID := mustEvent(t, s, organizer, "Launch", fixedNow.Add(48*time.Hour))

	inv, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	require.NoError(t, err)

	got, err := s.RespondInvitation(ctx, inv.ID, invitee, models.ActionDecline)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationDeclined, got.Status)
	assert.NotNil(t, got.RespondedAt)

	guests, err := s.GuestsForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	assert.Empty(t, guests)

	var rsvps int
	require.NoError(t, testDB.QueryRow(`SELECT COUNT(*) FROM rsvps`).Scan(&rsvps))
	assert.Zero(t, rsvps)
}

func TestRespondInvitation_NotPendingOrNotInvitee(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	invitee := mustUser(t, s, "invitee")
	eventID := mustEvent(t, s, organizer, "Launch", fixedNow.Add(48*time.Hour))

	inv, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	require.NoError(t, err)

	// Only the invitee may answer.
	_, err = s.RespondInvitation(ctx, inv.ID, organizer, models.ActionAccept)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.RespondInvitation(ctx, inv.ID, invitee, models.ActionAccept)
	require.NoError(t, err)

	_, err = s.RespondInvitation(ctx, inv.ID, invitee, models.ActionDecline)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.RespondInvitation(ctx, inv.ID, invitee, models.ActionAccept)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	list, err := s.InvitationsForInvitee(ctx, invitee)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.InvitationAccepted, list[0].Status)

	var guests int
	require.NoError(t, testDB.QueryRow(`SELECT COUNT(*) FROM guests`).Scan(&guests))
	assert.Equal(t, 1, guests)
}

func TestRespondInvitation_ReusesExistingGuest(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	invitee := mustUser(t, s, "invitee")
	eventID := mustEvent(t, s, organizer, "Launch", fixedNow.Add(48*time.Hour))

	first, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	require.NoError(t, err)
	_, err = s.RespondInvitation(ctx, first.ID, invitee, models.ActionAccept)
	require.NoError(t, err)

	// Re-inviting after the first invitation was cancelled must not duplicate the guest.
	require.NoError(t, s.DeleteInvitationForOrganizer(ctx, first.ID, organizer))

	second, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	require.NoError(t, err)
	_, err = s.RespondInvitation(ctx, second.ID, invitee, models.ActionAccept)
	require.NoError(t, err)

	guests, err := s.GuestsForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Nil(t, guests[0].InvitationID)
}

func TestInvitations_Ownership(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	other := mustUser(t, s, "other")
	invitee := mustUser(t, s, "invitee")
	eventID := mustEvent(t, s, organizer, "Launch", fixedNow.Add(48*time.Hour))

	inv, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	require.NoError(t, err)

	_, err = s.InvitationsForOrganizer(ctx, eventID, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.InvitationsForOrganizer(ctx, eventID+100, organizer)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.CreateInvitation(ctx, eventID, other, invitee, "")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = s.DeleteInvitationForOrganizer(ctx, inv.ID, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	assert.ErrorIs(t, err, storage.ErrInvitationExists)

	_, err = s.CreateInvitation(ctx, eventID, organizer, invitee+100, "")
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	list, err := s.InvitationsForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "invitee", list[0].Invitee.Username)
}

func TestEvents_ScopedToOrganizer(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	other := mustUser(t, s, "other")

	for i := 0; i < 12; i++ {
		mustEvent(t, s, organizer, "Event", fixedNow.Add(time.Duration(i)*24*time.Hour))
	}
	otherEvent := mustEvent(t, s, other, "Theirs", fixedNow)

	page, total, err := s.EventsForOrganizer(ctx, organizer, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, page, 2)

	page, total, err = s.EventsForOrganizer(ctx, organizer, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Empty(t, page)

	d, err := s.Dashboard(ctx, organizer)
	require.NoError(t, err)
	assert.Equal(t, 12, d.TotalEvents)
	assert.Len(t, d.Upcoming, models.UpcomingEventsMax)

	_, err = s.EventForOrganizer(ctx, otherEvent, organizer)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = s.UpdateEvent(ctx, models.Event{
		ID:        otherEvent,
		Title:     "Hijacked",
		EventType: models.EventTypeOther,
		Status:    models.EventStatusPlanning,
		StartDate: fixedNow,
		EndDate:   fixedNow,
		CreatedBy: organizer,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.DeleteEvent(ctx, otherEvent, organizer), storage.ErrNotFound)
	assert.NoError(t, s.DeleteEvent(ctx, otherEvent, other))
}

func TestUpdateRSVPForOrganizer(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	other := mustUser(t, s, "other")
	invitee := mustUser(t, s, "invitee")
	eventID := mustEvent(t, s, organizer, "Launch", fixedNow.Add(48*time.Hour))

	inv, err := s.CreateInvitation(ctx, eventID, organizer, invitee, "")
	require.NoError(t, err)
	_, err = s.RespondInvitation(ctx, inv.ID, invitee, models.ActionAccept)
	require.NoError(t, err)

	guests, err := s.GuestsForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	rsvpID := guests[0].RSVP.ID

	upd := models.RSVPUpdate{Status: models.RSVPAccepted, NumberOfGuests: 3, Notes: "vegan"}

	_, err = s.UpdateRSVPForOrganizer(ctx, rsvpID, other, upd)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	rsvp, err := s.UpdateRSVPForOrganizer(ctx, rsvpID, organizer, upd)
	require.NoError(t, err)
	assert.Equal(t, guests[0].ID, rsvp.GuestID)
	assert.Equal(t, 3, rsvp.NumberOfGuests)
	require.NotNil(t, rsvp.ResponseDate)

	assert.ErrorIs(t, s.DeleteGuestForOrganizer(ctx, guests[0].ID, other), storage.ErrNotFound)
	require.NoError(t, s.DeleteGuestForOrganizer(ctx, guests[0].ID, organizer))

	var rsvps int
	require.NoError(t, testDB.QueryRow(`SELECT COUNT(*) FROM rsvps`).Scan(&rsvps))
	assert.Zero(t, rsvps)
}

func TestBudget_Totals(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	eventID := mustEvent(t, s, organizer, "Gala", fixedNow.Add(48*time.Hour))

	items, totals, err := s.BudgetForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.True(t, totals.Estimated.IsZero())
	assert.True(t, totals.Actual.IsZero())

	_, err = s.CreateBudgetItem(ctx, models.BudgetItem{
		EventID:       eventID,
		Category:      models.BudgetVenue,
		Name:          "Hall",
		EstimatedCost: dec("100.00"),
		Status:        models.BudgetPlanned,
	}, organizer)
	require.NoError(t, err)

	paidOn := models.NewDate(2025, time.February, 20)
	secondID, err := s.CreateBudgetItem(ctx, models.BudgetItem{
		EventID:       eventID,
		Category:      models.BudgetCatering,
		Name:          "Snacks",
		EstimatedCost: dec("50.00"),
		ActualCost:    decimal.NewNullDecimal(dec("45.00")),
		Status:        models.BudgetPaid,
		PaymentDate:   &paidOn,
	}, organizer)
	require.NoError(t, err)

	items, totals, err = s.BudgetForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, totals.Estimated.Equal(dec("150.00")), totals.Estimated.String())
	assert.True(t, totals.Actual.Equal(dec("45.00")), totals.Actual.String())
	assert.True(t, totals.Remaining.Equal(dec("105.00")), totals.Remaining.String())

	err = s.UpdateBudgetItemForOrganizer(ctx, models.BudgetItem{
		ID:            secondID,
		Category:      models.BudgetCatering,
		Name:          "Snacks",
		EstimatedCost: dec("60.10"),
		ActualCost:    decimal.NewNullDecimal(dec("45.00")),
		Status:        models.BudgetPaid,
		PaymentDate:   &paidOn,
	}, organizer)
	require.NoError(t, err)

	_, totals, err = s.BudgetForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	assert.True(t, totals.Estimated.Equal(dec("160.10")), totals.Estimated.String())

	require.NoError(t, s.DeleteBudgetItemForOrganizer(ctx, secondID, organizer))

	_, totals, err = s.BudgetForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	assert.True(t, totals.Estimated.Equal(dec("100.00")))
	assert.True(t, totals.Actual.IsZero())
}

func TestBudget_OwnershipAndVendorLink(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	other := mustUser(t, s, "other")
	eventID := mustEvent(t, s, organizer, "Gala", fixedNow)
	otherEvent := mustEvent(t, s, organizer, "Picnic", fixedNow)
	vendorID := mustVendor(t, s, "Acme Catering")

	contractID, err := s.AssignVendor(ctx, models.EventVendor{
		EventID:        otherEvent,
		VendorID:       vendorID,
		ContractAmount: dec("500.00"),
		Status:         models.EventVendorPending,
	}, organizer)
	require.NoError(t, err)

	item := models.BudgetItem{
		EventID:       eventID,
		EventVendorID: &contractID,
		Category:      models.BudgetCatering,
		Name:          "Food",
		EstimatedCost: dec("10.00"),
		Status:        models.BudgetPlanned,
	}

	_, err = s.CreateBudgetItem(ctx, item, organizer)
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	item.EventVendorID = nil
	_, err = s.CreateBudgetItem(ctx, item, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, _, err = s.BudgetForOrganizer(ctx, eventID, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	id, err := s.CreateBudgetItem(ctx, item, organizer)
	require.NoError(t, err)

	item.ID = id
	assert.ErrorIs(t, s.UpdateBudgetItemForOrganizer(ctx, item, other), storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteBudgetItemForOrganizer(ctx, id, other), storage.ErrNotFound)
}

func TestAssignVendor_Duplicate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizer := mustUser(t, s, "organizer")
	other := mustUser(t, s, "other")
	eventID := mustEvent(t, s, organizer, "Gala", fixedNow)
	vendorID := mustVendor(t, s, "Acme Catering")

	name, assigned, err := s.VendorAssignment(ctx, eventID, vendorID, 0, organizer)
	require.NoError(t, err)
	assert.Equal(t, "Acme Catering", name)
	assert.False(t, assigned)

	ev := models.EventVendor{
		EventID:            eventID,
		VendorID:           vendorID,
		ServiceDescription: "Dinner",
		ContractAmount:     dec("1200.50"),
		Status:             models.EventVendorPending,
	}

	_, err = s.AssignVendor(ctx, ev, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	id, err := s.AssignVendor(ctx, ev, organizer)
	require.NoError(t, err)

	_, assigned, err = s.VendorAssignment(ctx, eventID, vendorID, 0, organizer)
	require.NoError(t, err)
	assert.True(t, assigned)

	_, assigned, err = s.VendorAssignment(ctx, eventID, vendorID, id, organizer)
	require.NoError(t, err)
	assert.False(t, assigned)

	_, err = s.AssignVendor(ctx, ev, organizer)
	assert.ErrorIs(t, err, storage.ErrEventVendorExists)

	contracts, err := s.EventVendorsForOrganizer(ctx, eventID, organizer)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "Acme Catering", contracts[0].Vendor.Name)
	assert.True(t, contracts[0].ContractAmount.Equal(dec("1200.50")))

	_, err = s.EventVendorsForOrganizer(ctx, eventID, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	ev.ID = id
	ev.Status = models.EventVendorConfirmed
	assert.ErrorIs(t, s.UpdateEventVendorForOrganizer(ctx, ev, other), storage.ErrNotFound)
	require.NoError(t, s.UpdateEventVendorForOrganizer(ctx, ev, organizer))

	got, err := s.EventVendorForOrganizer(ctx, id, organizer)
	require.NoError(t, err)
	assert.Equal(t, models.EventVendorConfirmed, got.Status)

	assert.ErrorIs(t, s.DeleteEventVendorForOrganizer(ctx, id, other), storage.ErrNotFound)
	require.NoError(t, s.DeleteEventVendorForOrganizer(ctx, id, organizer))

	_, _, err = s.VendorAssignment(ctx, eventID, vendorID+100, 0, organizer)
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	_, _, err = s.VendorAssignment(ctx, eventID, vendorID, 0, other)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestVendorCatalog(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id := mustVendor(t, s, "Bloom")
	mustVendor(t, s, "Acme")

	vendors, err := s.Vendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Acme", vendors[0].Name)

	err = s.UpdateVendor(ctx, models.Vendor{
		ID:            id,
		Name:          "Bloom & Co",
		Category:      models.VendorDecoration,
		ContactPerson: "Rosa",
		Email:         "rosa@example.com",
		PhoneNumber:   "555-0101",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteVendor(ctx, id))
	assert.ErrorIs(t, s.DeleteVendor(ctx, id), storage.ErrNotFound)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id := mustUser(t, s, "alice")

	_, err := s.CreateUser(ctx, models.User{Username: "alice", Email: "a@example.com", Role: models.RoleGuest, PasswordHash: "x"})
	assert.ErrorIs(t, err, storage.ErrUserExists)

	u, err := s.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = s.UserByID(ctx, id+100)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
