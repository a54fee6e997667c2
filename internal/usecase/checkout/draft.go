package checkout

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/domain/payment"
	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

// ======================================================
// TYPES
// ======================================================

type Variant string

const (
	VariantWalkIn      Variant = "walk_in"
	VariantAppointment Variant = "appointment"
)

type Step int

const (
	StepServices Step = 1
	StepPayment  Step = 2
)

const maxPayments = 2

// Payment is one entry of the payment split. Amount keeps the text the user
// typed, as in "30,00".
type Payment struct {
	ID     uuid.UUID      `json:"id"`
	Method payment.Method `json:"method"`
	Amount string         `json:"amount"`
}

// Draft is an open sale. Its methods keep the payment split consistent with
// the total: a lone entry always equals the total and, with two entries,
// editing one recomputes the other.
type Draft struct {
	ID      uuid.UUID
	Variant Variant
	Step    Step

	ClientName  string
	Appointment *models.Appointment

	Selected     []models.Service
	DiscountText string
	Payments     []Payment
}

// ======================================================
// CONSTRUCTORS
// ======================================================

func NewWalkIn(clientName string) *Draft {
	return &Draft{
		Variant:    VariantWalkIn,
		Step:       StepServices,
		ClientName: strings.TrimSpace(clientName),
		Payments:   []Payment{newPayment(payment.Pix, decimal.Zero)},
	}
}

// NewForAppointment opens a draft for a booked appointment, preselecting the
// catalog services whose name appears in the appointment's service text.
func NewForAppointment(ap models.Appointment, catalog []models.Service) (*Draft, error) {
	if err := domain.CanFinalize(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	d := &Draft{
		Variant:     VariantAppointment,
		Step:        StepServices,
		ClientName:  ap.ClientName,
		Appointment: &ap,
	}

	text := strings.ToLower(ap.Service)
	for _, s := range catalog {
		if strings.Contains(text, strings.ToLower(s.Name)) {
			d.Selected = append(d.Selected, s)
		}
	}

	d.Payments = []Payment{newPayment(payment.Pix, d.Subtotal())}
	return d, nil
}

func newPayment(m payment.Method, amount decimal.Decimal) Payment {
	return Payment{ID: uuid.New(), Method: m, Amount: FormatAmount(amount)}
}

// ======================================================
// TOTALS
// ======================================================

func (d *Draft) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range d.Selected {
		sum = sum.Add(s.Price)
	}
	return sum
}

func (d *Draft) Discount() decimal.Decimal {
	return ParseDiscount(d.DiscountText)
}

func (d *Draft) Total() decimal.Decimal {
	return clampZero(d.Subtotal().Sub(d.Discount()))
}

func (d *Draft) PaidTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range d.Payments {
		sum = sum.Add(ParseAmount(p.Amount))
	}
	return sum
}

// Balanced reports whether the payments add up to the total, within a cent.
func (d *Draft) Balanced() bool {
	return withinCent(d.PaidTotal(), d.Total())
}

// IsSelected reports whether the service with id is part of the sale.
func (d *Draft) IsSelected(id uint) bool {
	return slices.ContainsFunc(d.Selected, func(s models.Service) bool { return s.ID == id })
}

// ======================================================
// STEP 1: SERVICES AND DISCOUNT
// ======================================================

func (d *Draft) ToggleService(svc models.Service) {
	before := d.Total()

	if d.IsSelected(svc.ID) {
		d.Selected = slices.DeleteFunc(d.Selected, func(s models.Service) bool { return s.ID == svc.ID })
	} else {
		d.Selected = append(d.Selected, svc)
	}

	d.totalChanged(before)
}

func (d *Draft) SetDiscount(text string) {
	before := d.Total()
	d.DiscountText = text
	d.totalChanged(before)
}

// SetClientName is only meaningful for walk-in sales; an appointment sale
// takes the name from the booking.
func (d *Draft) SetClientName(name string) error {
	if d.Variant != VariantWalkIn {
		return httperr.ErrBusiness("client_name_fixed")
	}
	d.ClientName = strings.TrimSpace(name)
	return nil
}

func (d *Draft) Next() error {
	if len(d.Selected) == 0 {
		return httperr.ErrBusiness("no_service_selected")
	}
	d.Step = StepPayment
	return nil
}

func (d *Draft) Back() {
	d.Step = StepServices
}

// totalChanged re-applies the split rules after the total moved.
func (d *Draft) totalChanged(before decimal.Decimal) {
	total := d.Total()

	switch len(d.Payments) {
	case 1:
		d.Payments[0].Amount = FormatAmount(total)
	case 2:
		if total.Equal(before) {
			return
		}
		first := ParseAmount(d.Payments[0].Amount)
		d.Payments[1].Amount = FormatAmount(clampZero(total.Sub(first)))
	}
}

// ======================================================
// STEP 2: PAYMENT SPLIT
// ======================================================

func (d *Draft) AddPayment() (*Payment, error) {
	if len(d.Payments) >= maxPayments {
		return nil, httperr.ErrBusiness("payment_limit")
	}

	used := make([]payment.Method, 0, len(d.Payments))
	for _, p := range d.Payments {
		used = append(used, p.Method)
	}

	p := newPayment(
		payment.NextUnused(used),
		clampZero(d.Total().Sub(d.PaidTotal())),
	)
	d.Payments = append(d.Payments, p)
	return &p, nil
}

func (d *Draft) RemovePayment(id uuid.UUID) error {
	i := d.paymentIndex(id)
	if i < 0 {
		return httperr.ErrBusiness("payment_not_found")
	}
	if len(d.Payments) == 1 {
		return httperr.ErrBusiness("last_payment")
	}

	d.Payments = slices.Delete(d.Payments, i, i+1)
	if len(d.Payments) == 1 {
		d.Payments[0].Amount = FormatAmount(d.Total())
	}
	return nil
}

// SetPaymentAmount stores the typed amount. With two entries the other one
// becomes the remainder; a lone entry stays pinned to the total.
func (d *Draft) SetPaymentAmount(id uuid.UUID, amount string) error {
	i := d.paymentIndex(id)
	if i < 0 {
		return httperr.ErrBusiness("payment_not_found")
	}

	total := d.Total()

	switch len(d.Payments) {
	case 1:
		d.Payments[0].Amount = FormatAmount(total)
	case 2:
		d.Payments[i].Amount = amount
		other := 1 - i
		d.Payments[other].Amount = FormatAmount(clampZero(total.Sub(ParseAmount(amount))))
	}
	return nil
}

func (d *Draft) SetPaymentMethod(id uuid.UUID, m payment.Method) error {
	if !m.Valid() {
		return httperr.ErrBusiness("invalid_payment_method")
	}
	i := d.paymentIndex(id)
	if i < 0 {
		return httperr.ErrBusiness("payment_not_found")
	}
	d.Payments[i].Method = m
	return nil
}

// SetPayments replaces the split verbatim, without any recompute. Used when
// the caller already holds the amounts it wants recorded.
func (d *Draft) SetPayments(entries []Payment) error {
	if len(entries) == 0 {
		return httperr.ErrBusiness("last_payment")
	}
	if len(entries) > maxPayments {
		return httperr.ErrBusiness("payment_limit")
	}

	out := make([]Payment, 0, len(entries))
	for _, e := range entries {
		if !e.Method.Valid() {
			return httperr.ErrBusiness("invalid_payment_method")
		}
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		out = append(out, e)
	}
	d.Payments = out
	return nil
}

func (d *Draft) paymentIndex(id uuid.UUID) int {
	return slices.IndexFunc(d.Payments, func(p Payment) bool { return p.ID == id })
}

// ======================================================
// SUBMISSION
// ======================================================

// ValidateSubmission runs every local check a submit needs before any
// remote call.
func (d *Draft) ValidateSubmission() error {
	if d.Variant == VariantWalkIn && d.ClientName == "" {
		return httperr.ErrBusiness("client_name_required")
	}
	if len(d.Selected) == 0 {
		return httperr.ErrBusiness("no_service_selected")
	}
	if d.Variant == VariantAppointment && d.Step != StepPayment {
		return httperr.ErrBusiness("wrong_step")
	}
	if !d.Balanced() {
		return httperr.ErrBusiness("payment_mismatch", FormatAmount(d.PaidTotal()), FormatAmount(d.Total()))
	}
	return nil
}

// Transaction builds the sale record dated date.
func (d *Draft) Transaction(date string) models.NewTransaction {
	services := make([]string, 0, len(d.Selected))
	for _, s := range d.Selected {
		services = append(services, s.Name)
	}
	methods := make([]string, 0, len(d.Payments))
	for _, p := range d.Payments {
		methods = append(methods, string(p.Method))
	}

	return models.NewTransaction{
		Date:          date,
		ClientName:    d.ClientName,
		Service:       strings.Join(services, ", "),
		PaymentMethod: strings.Join(methods, ", "),
		Subtotal:      d.Subtotal(),
		Discount:      d.Discount(),
		Value:         d.Total(),
	}
}

// Clone returns a deep copy safe to read outside the registry lock.
func (d *Draft) Clone() Draft {
	c := *d
	c.Selected = slices.Clone(d.Selected)
	c.Payments = slices.Clone(d.Payments)
	if d.Appointment != nil {
		ap := *d.Appointment
		c.Appointment = &ap
	}
	return c
}
