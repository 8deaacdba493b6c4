package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

const (
	unexpectedErrorMessage = "An unexpected error occurred."

	// reportTimeout bounds how long history and event delivery may delay a
	// rates response.
	reportTimeout = 5 * time.Second
)

// ExtractionState is the inline status of an address extraction for one
// target. It is independent of the controller's shared status.
type ExtractionState struct {
	Status shipping.Status `json:"status"`
	Error  string          `json:"error,omitempty"`
}

// State is a point-in-time copy of everything the controller owns.
type State struct {
	Sender        shipping.Address
	Receiver      shipping.Address
	Parcel        shipping.Parcel
	HasCredential bool
	Status        shipping.Status
	Rates         []shipping.Rate
	Error         string
	Extraction    map[shipping.Target]ExtractionState
}

// Controller owns the form state and orchestrates the rates and extraction
// clients. Overlapping requests are not coordinated: whichever completes last
// determines the final state.
type Controller struct {
	fetcher   RateFetcher
	extractor AddressExtractor
	recorder  QuoteRecorder
	notifier  QuoteNotifier
	onStatus  func(from, to shipping.Status)

	mu         sync.Mutex
	sender     shipping.Address
	receiver   shipping.Address
	parcel     shipping.Parcel
	credential string
	status     shipping.Status
	rates      []shipping.Rate
	errMsg     string
	extraction map[shipping.Target]ExtractionState
}

type Option func(*Controller)

// WithCredential sets the initial rates API token.
func WithCredential(token string) Option {
	return func(c *Controller) { c.credential = token }
}

func WithRecorder(r QuoteRecorder) Option {
	return func(c *Controller) { c.recorder = r }
}

func WithNotifier(n QuoteNotifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithStatusHook registers fn to observe every status transition. fn runs
// outside the controller lock.
func WithStatusHook(fn func(from, to shipping.Status)) Option {
	return func(c *Controller) { c.onStatus = fn }
}

// NewController returns a controller holding the default sender, receiver and
// parcel in the idle status.
func NewController(fetcher RateFetcher, extractor AddressExtractor, opts ...Option) *Controller {
	c := &Controller{
		fetcher:    fetcher,
		extractor:  extractor,
		sender:     shipping.DefaultSender,
		receiver:   shipping.DefaultReceiver,
		parcel:     shipping.DefaultParcel,
		status:     shipping.StatusIdle,
		extraction: make(map[shipping.Target]ExtractionState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CalculateRates requests quotes for the current form state. Rates and error
// are cleared first; the status ends in success with a non-empty list, or in
// error otherwise.
func (c *Controller) CalculateRates(ctx context.Context) State {
	c.mu.Lock()
	c.rates = nil
	c.errMsg = ""
	from := c.setStatusLocked(shipping.StatusFetchingRates)
	sender, receiver, parcel, token := c.sender, c.receiver, c.parcel, c.credential
	c.mu.Unlock()
	c.statusChanged(from, shipping.StatusFetchingRates)

	resp, err := c.fetcher.FetchRates(ctx, sender, receiver, parcel, token)

	quote := shipping.Quote{Mock: shipping.IsMockCredential(token)}
	c.mu.Lock()
	switch {
	case err != nil:
		slog.Error("rate retrieval failed", "error", err)
		c.errMsg = errorMessage(err)
		quote.Error = c.errMsg
	case len(resp.Rates) == 0:
		c.errMsg = shipping.ErrEmptyResult.Error()
		quote.ShipmentID = resp.ObjectID
		quote.Error = c.errMsg
	default:
		c.rates = resp.Rates
		quote.ShipmentID = resp.ObjectID
		quote.Rates = resp.Rates
	}
	to := shipping.StatusSuccess
	if c.errMsg != "" {
		to = shipping.StatusError
	}
	from = c.setStatusLocked(to)
	state := c.snapshotLocked()
	c.mu.Unlock()
	c.statusChanged(from, to)

	quote.Status = to
	reportCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	defer cancel()
	c.report(reportCtx, quote)
	return state
}

// ParseAddress extracts an address from text and, on success, replaces the
// target address wholesale. Failures are kept on the target's extraction
// state and never touch the shared status.
func (c *Controller) ParseAddress(ctx context.Context, target shipping.Target, text string) (shipping.Address, error) {
	if _, err := shipping.ParseTarget(string(target)); err != nil {
		return shipping.Address{}, err
	}
	if strings.TrimSpace(text) == "" {
		return shipping.Address{}, shipping.ErrBlankText
	}

	c.mu.Lock()
	c.extraction[target] = ExtractionState{Status: shipping.StatusParsing}
	c.mu.Unlock()

	addr, err := c.extractor.Extract(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.extraction[target] = ExtractionState{Status: shipping.StatusError, Error: errorMessage(err)}
		return shipping.Address{}, err
	}
	c.setAddressLocked(target, addr)
	c.extraction[target] = ExtractionState{Status: shipping.StatusSuccess}
	return addr, nil
}

// SetAddress replaces the target address wholesale.
func (c *Controller) SetAddress(target shipping.Target, addr shipping.Address) error {
	if _, err := shipping.ParseTarget(string(target)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setAddressLocked(target, addr)
	return nil
}

// UpdateAddressField edits a single field of the target address.
func (c *Controller) UpdateAddressField(target shipping.Target, field, value string) error {
	return c.UpdateAddressFields(target, map[string]string{field: value})
}

// UpdateAddressFields applies several field edits to the target address. Either
// all edits are applied or, on an unknown field, none are.
func (c *Controller) UpdateAddressFields(target shipping.Target, fields map[string]string) error {
	if _, err := shipping.ParseTarget(string(target)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	addr := c.receiver
	if target == shipping.TargetSender {
		addr = c.sender
	}
	for field, value := range fields {
		if err := addr.SetField(field, value); err != nil {
			return err
		}
	}
	c.setAddressLocked(target, addr)
	return nil
}

func (c *Controller) SetParcel(p shipping.Parcel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parcel = p
}

func (c *Controller) UpdateParcelField(field, value string) error {
	return c.UpdateParcelFields(map[string]string{field: value})
}

// UpdateParcelFields applies several parcel field edits, all or nothing.
func (c *Controller) UpdateParcelFields(fields map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	parcel := c.parcel
	for field, value := range fields {
		if err := parcel.SetField(field, value); err != nil {
			return err
		}
	}
	c.parcel = parcel
	return nil
}

// SetCredential stores the rates API token. A blank token selects mock mode.
func (c *Controller) SetCredential(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = token
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	extraction := make(map[shipping.Target]ExtractionState, len(c.extraction))
	for k, v := range c.extraction {
		extraction[k] = v
	}
	var rates []shipping.Rate
	if c.rates != nil {
		rates = append([]shipping.Rate{}, c.rates...)
	}
	return State{
		Sender:        c.sender,
		Receiver:      c.receiver,
		Parcel:        c.parcel,
		HasCredential: !shipping.IsMockCredential(c.credential),
		Status:        c.status,
		Rates:         rates,
		Error:         c.errMsg,
		Extraction:    extraction,
	}
}

func (c *Controller) setAddressLocked(target shipping.Target, addr shipping.Address) {
	if target == shipping.TargetSender {
		c.sender = addr
		return
	}
	c.receiver = addr
}

func (c *Controller) setStatusLocked(to shipping.Status) shipping.Status {
	from := c.status
	c.status = to
	return from
}

func (c *Controller) statusChanged(from, to shipping.Status) {
	slog.Info("status changed", "from", from, "to", to)
	if c.onStatus != nil {
		c.onStatus(from, to)
	}
}

// report hands a completed quote to the optional recorder and notifier.
// Their failures are logged and do not affect the outcome.
func (c *Controller) report(ctx context.Context, quote shipping.Quote) {
	if c.recorder != nil {
		if err := c.recorder.RecordQuote(ctx, quote); err != nil {
			slog.Warn("record quote failed", "shipment_id", quote.ShipmentID, "error", err)
		}
	}
	if c.notifier != nil {
		if err := c.notifier.PublishRatesQuoted(ctx, quote); err != nil {
			slog.Warn("publish rates.quoted failed", "shipment_id", quote.ShipmentID, "error", err)
		}
	}
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unexpectedErrorMessage
}

// IsUserError reports whether err came from invalid caller input rather than
// an upstream failure.
func IsUserError(err error) bool {
	var targetErr *shipping.UnknownTargetError
	return errors.Is(err, shipping.ErrUnknownField) ||
		errors.Is(err, shipping.ErrBlankText) ||
		errors.As(err, &targetErr)
}
