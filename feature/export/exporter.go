package export

import (
	"context"
	"time"

	"profile-exporter/core/event"
	"profile-exporter/core/notify"
	"profile-exporter/feature/profile/accumulator"
	"profile-exporter/feature/profile/models"
	"profile-exporter/feature/profile/ordering"

	"go.uber.org/zap"
)

const (
	// PluginName identifies the exporter in notifications.
	PluginName = "ProfileExport"
	// PluginSource is the source tag of every notification.
	PluginSource = "plugin"

	// MissingDataMessage is reported when a login payload has no building list.
	MissingDataMessage = "No file created. Data was missing during the Export process. This happens sometimes, when com2us failes to include important data during the request. Normally this fixes itself after a few tries."
)

// Result statuses reported by the exporter in addition to the accumulator statuses.
const (
	StatusDisabled  = "disabled"
	StatusCompleted = "completed"
)

// BlobWriter queues blobs for persistence.
type BlobWriter interface {
	Submit(b Blob) error
}

// Exporter turns captured game events into exported profile files.
//
// Login events register the player's profile; storage list events merge
// the sealed monster storage into it. Depending on Options, profiles are
// written on login or once the storage list has been merged.
type Exporter struct {
	opts     Options
	acc      *accumulator.Accumulator
	writer   BlobWriter
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewExporter creates an Exporter keeping its profiles in store.
func NewExporter(opts Options, store accumulator.Store, writer BlobWriter, notifier notify.Notifier, logger *zap.Logger) *Exporter {
	var accOpts []accumulator.Option
	if opts.SortData {
		accOpts = append(accOpts, accumulator.WithOrdering(ordering.Order))
	}
	return &Exporter{
		opts:     opts,
		acc:      accumulator.New(store, accOpts...),
		writer:   writer,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Register routes the events the exporter handles to d.
func (e *Exporter) Register(d *event.Dispatcher) {
	d.Handle(event.HubUserLogin, e.HandleLogin)
	d.Handle(event.GuestLogin, e.HandleLogin)
	d.Handle(event.GetUnitStorageList, e.HandleUnitStorageList)
	d.Handle(event.GetWizardDataPart1, e.HandleWizardDataPart1)
}

// Peek returns the profile currently held for identity.
func (e *Exporter) Peek(identity string) (*models.Profile, bool) {
	return e.acc.Peek(identity)
}

// Pending returns the number of profiles waiting for their storage list.
func (e *Exporter) Pending() int {
	return e.acc.Len()
}

// HandleLogin handles HubUserLogin and GuestLogin. Only authenticated
// logins produce a timestamped copy.
func (e *Exporter) HandleLogin(ctx context.Context, env event.Envelope) (event.Result, error) {
	if !e.opts.Enabled {
		return event.Result{Status: StatusDisabled}, nil
	}

	var p models.Profile
	if err := env.Decode(nil, &p); err != nil {
		return event.Result{Status: string(accumulator.StatusRejected)}, err
	}
	identity := p.Identity()

	out := e.acc.IngestPrimary(identity, &p)
	if out.Status == accumulator.StatusRejected {
		e.logger.Warn("Login payload rejected",
			zap.String("command", string(env.Command)),
			zap.String("wizard_id", identity),
			zap.Error(out.Err),
		)
		e.notifier.Notify(newEvent(notify.TypeError, MissingDataMessage))
		return event.Result{Status: string(out.Status), Identity: identity, Message: MissingDataMessage}, nil
	}

	if !e.opts.MergeStorage {
		e.save(out.Record, false)
	}
	if e.opts.TimestampedCopy && env.Command == event.HubUserLogin {
		e.save(out.Record, true)
	}
	return event.Result{Status: string(out.Status), Identity: identity}, nil
}

type storageListRequest struct {
	WizardID models.Scalar `json:"wizard_id"`
}

type storageList struct {
	UnitStorageList []models.Creature `json:"unit_storage_list"`
}

// HandleUnitStorageList handles getUnitStorageList. The merged profile is
// saved and stays held, so a later storage list saves it again.
func (e *Exporter) HandleUnitStorageList(ctx context.Context, env event.Envelope) (event.Result, error) {
	if !e.opts.Enabled || !e.opts.MergeStorage {
		return event.Result{Status: StatusDisabled}, nil
	}

	var (
		req  storageListRequest
		resp storageList
	)
	if err := env.Decode(&req, &resp); err != nil {
		return event.Result{Status: string(accumulator.StatusIgnored)}, err
	}
	identity := req.WizardID.String()

	out := e.acc.IngestAugmentation(identity, resp.UnitStorageList)
	if out.Status == accumulator.StatusIgnored {
		return event.Result{Status: string(out.Status), Identity: identity}, nil
	}
	e.save(out.Record, false)
	return event.Result{Status: string(out.Status), Identity: identity}, nil
}

// HandleWizardDataPart1 handles GetWizardDataPart1. The storage list is
// nested and optional; when absent the profile is saved without one. The
// profile is released afterwards so reopening the storage does not save a
// duplicate.
func (e *Exporter) HandleWizardDataPart1(ctx context.Context, env event.Envelope) (event.Result, error) {
	if !e.opts.Enabled || !e.opts.MergeStorage {
		return event.Result{Status: StatusDisabled}, nil
	}

	var (
		req  storageListRequest
		resp struct {
			GetUnitStorageList *storageList `json:"GetUnitStorageList"`
		}
	)
	if err := env.Decode(&req, &resp); err != nil {
		return event.Result{Status: string(accumulator.StatusIgnored)}, err
	}
	identity := req.WizardID.String()

	var list []models.Creature
	if resp.GetUnitStorageList != nil {
		list = resp.GetUnitStorageList.UnitStorageList
	}

	out := e.acc.IngestAugmentation(identity, list)
	if out.Status == accumulator.StatusIgnored {
		return event.Result{Status: string(out.Status), Identity: identity}, nil
	}
	e.save(out.Record, false)
	e.acc.CompleteAndEvict(identity)
	return event.Result{Status: StatusCompleted, Identity: identity}, nil
}

// save encodes p now and queues the file. Failures are reported, never returned.
func (e *Exporter) save(p *models.Profile, timestamped bool) {
	identity := p.Identity()
	name := p.WizardInfo.WizardName

	blob := Blob{Identity: identity, DisplayName: name}
	if timestamped {
		blob.Folder = TimestampFolder
		blob.Name = TimestampedFileName(name, identity, e.now())
	} else {
		blob.Name = FileName(name, identity)
	}

	data, err := models.MarshalIndent(p)
	if err != nil {
		e.logger.Error("Failed to encode profile", zap.String("wizard_id", identity), zap.Error(err))
		e.notifier.Notify(newEvent(notify.TypeError, "Failed to encode profile data for "+blob.Name+": "+err.Error()))
		return
	}
	blob.Data = data

	if err := e.writer.Submit(blob); err != nil {
		e.logger.Error("Failed to queue profile", zap.String("file", blob.Path()), zap.Error(err))
		e.notifier.Notify(newEvent(notify.TypeError, "Failed to save profile data to "+blob.Name+": "+err.Error()))
	}
}

func newEvent(t notify.Type, message string) notify.Event {
	return notify.Event{
		Type:    t,
		Source:  PluginSource,
		Name:    PluginName,
		Message: message,
		Time:    time.Now(),
	}
}
