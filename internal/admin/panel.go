// Package admin implements the profile management flow: a list of profiles
// with an add/edit form and delete actions.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/notify"
	"github.com/Raymond9734/profile-directory/internal/service"
	"github.com/Raymond9734/profile-directory/internal/validation"
)

// State is the panel's current mode
type State string

// Panel states
const (
	StateClosed   State = "closed"
	StateListing  State = "listing"
	StateCreating State = "creating"
	StateEditing  State = "editing"
)

// ErrInvalidTransition is returned when an action is not allowed in the current state.
// It matches models.ErrConflict.
var ErrInvalidTransition = fmt.Errorf("invalid admin panel transition: %w", models.ErrConflict)

// Notification texts
var (
	CreatedNotification = notify.Success("Profile Created", "The new profile has been created successfully.")
	UpdatedNotification = notify.Success("Profile Updated", "The profile has been updated successfully.")
	DeletedNotification = notify.Success("Profile Deleted", "The profile has been deleted successfully.")
	CreateFailed        = notify.Failure("Failed to create profile. Please try again.")
	UpdateFailed        = notify.Failure("Failed to update profile. Please try again.")
	DeleteFailed        = notify.Failure("Failed to delete profile. Please try again.")
)

// Panel is the admin flow state machine:
//
//	closed -> listing -> creating | editing -> listing
//
// A Panel belongs to one user session and is not safe for concurrent use.
type Panel struct {
	profileSvc service.ProfileService
	notifier   notify.Notifier
	logger     *slog.Logger

	state    State
	profiles []*models.Profile
	form     validation.ProfileForm
	errors   validation.FieldErrors
	editing  *models.Profile
}

// NewPanel creates a closed panel
func NewPanel(profileSvc service.ProfileService, notifier notify.Notifier, logger *slog.Logger) *Panel {
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	return &Panel{
		profileSvc: profileSvc,
		notifier:   notifier,
		logger:     logger,
		state:      StateClosed,
	}
}

// State returns the current mode
func (p *Panel) State() State {
	return p.state
}

// Open moves from closed to listing and loads the profiles
func (p *Panel) Open(ctx context.Context) error {
	if p.state != StateClosed {
		return fmt.Errorf("%w: open from %s", ErrInvalidTransition, p.state)
	}
	p.state = StateListing
	return p.Refresh(ctx)
}

// Close discards any open form and closes the panel
func (p *Panel) Close() {
	p.resetForm()
	p.state = StateClosed
}

// Refresh reloads the profile list
func (p *Panel) Refresh(ctx context.Context) error {
	profiles, err := p.profileSvc.List(ctx)
	if err != nil {
		p.logger.Error("failed to load admin profiles",
			slog.String("error", err.Error()),
		)
		return err
	}
	p.profiles = profiles
	return nil
}

// Profiles returns the loaded profiles
func (p *Panel) Profiles() []*models.Profile {
	return p.profiles
}

// StartCreate opens a blank form from the listing
func (p *Panel) StartCreate() error {
	if p.state != StateListing {
		return fmt.Errorf("%w: create from %s", ErrInvalidTransition, p.state)
	}
	p.resetForm()
	p.form = validation.NewProfileForm()
	p.state = StateCreating
	return nil
}

// StartEdit opens the form prefilled with a listed profile
func (p *Panel) StartEdit(id int64) error {
	if p.state != StateListing {
		return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, p.state)
	}

	var target *models.Profile
	for _, profile := range p.profiles {
		if profile.ID == id {
			target = profile
			break
		}
	}
	if target == nil {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
	}

	p.resetForm()
	p.editing = target.Clone()
	p.form = validation.FormFromProfile(target)
	p.state = StateEditing
	return nil
}

// Editing returns the profile being edited, if any
func (p *Panel) Editing() *models.Profile {
	return p.editing
}

// Form returns the current form values
func (p *Panel) Form() validation.ProfileForm {
	return p.form
}

// Errors returns the current field errors
func (p *Panel) Errors() validation.FieldErrors {
	out := make(validation.FieldErrors, len(p.errors))
	for k, v := range p.errors {
		out[k] = v
	}
	return out
}

// SetField changes one form value and re-validates that field, along with its
// paired coordinate. The returned error is the field's validation message, if any.
func (p *Panel) SetField(field, value string) error {
	if !p.formOpen() {
		return fmt.Errorf("%w: edit field in %s", ErrInvalidTransition, p.state)
	}
	if err := p.form.Set(field, value); err != nil {
		return err
	}

	if p.errors == nil {
		p.errors = validation.FieldErrors{}
	}
	if other, ok := validation.Paired(field); ok {
		p.revalidate(other)
	}
	return p.revalidate(field)
}

func (p *Panel) revalidate(field string) error {
	if err := validation.ValidateField(p.form, field); err != nil {
		p.errors[field] = err.Error()
		return err
	}
	delete(p.errors, field)
	return nil
}

// Submit sends the form. An invalid form is blocked without any network call
// and returns validation.FieldErrors. On success the panel returns to listing;
// on failure the form stays open and populated.
func (p *Panel) Submit(ctx context.Context) (*models.Profile, error) {
	if !p.formOpen() {
		return nil, fmt.Errorf("%w: submit in %s", ErrInvalidTransition, p.state)
	}

	if errs := validation.Validate(p.form); errs != nil {
		p.errors = errs
		return nil, errs
	}
	p.errors = nil

	if p.state == StateCreating {
		return p.create(ctx)
	}
	return p.update(ctx)
}

func (p *Panel) create(ctx context.Context) (*models.Profile, error) {
	created, err := p.profileSvc.Create(ctx, p.form.ToProfile())
	if err != nil {
		p.notifier.Notify(CreateFailed)
		return nil, err
	}

	p.notifier.Notify(CreatedNotification)
	p.finish(ctx)
	return created, nil
}

func (p *Panel) update(ctx context.Context) (*models.Profile, error) {
	updated, err := p.profileSvc.Update(ctx, mergeEdit(p.editing, p.form.ToProfile()))
	if err != nil {
		p.notifier.Notify(UpdateFailed)
		return nil, err
	}

	p.notifier.Notify(UpdatedNotification)
	p.finish(ctx)
	return updated, nil
}

// Cancel discards the form and returns to listing
func (p *Panel) Cancel() error {
	if !p.formOpen() {
		return fmt.Errorf("%w: cancel in %s", ErrInvalidTransition, p.state)
	}
	p.resetForm()
	p.state = StateListing
	return nil
}

// Delete removes a profile immediately. Only allowed while listing.
func (p *Panel) Delete(ctx context.Context, id int64) error {
	if p.state != StateListing {
		return fmt.Errorf("%w: delete in %s", ErrInvalidTransition, p.state)
	}

	if err := p.profileSvc.Delete(ctx, id); err != nil {
		p.notifier.Notify(DeleteFailed)
		return err
	}

	p.notifier.Notify(DeletedNotification)
	if err := p.Refresh(ctx); err != nil {
		p.dropLocal(id)
	}
	return nil
}

func (p *Panel) finish(ctx context.Context) {
	p.resetForm()
	p.state = StateListing
	// the mutation already succeeded; a failed reload only leaves a stale list
	_ = p.Refresh(ctx)
}

func (p *Panel) dropLocal(id int64) {
	kept := p.profiles[:0:0]
	for _, profile := range p.profiles {
		if profile.ID != id {
			kept = append(kept, profile)
		}
	}
	p.profiles = kept
}

func (p *Panel) formOpen() bool {
	return p.state == StateCreating || p.state == StateEditing
}

func (p *Panel) resetForm() {
	p.form = validation.ProfileForm{}
	p.errors = nil
	p.editing = nil
}

// mergeEdit applies the form values onto the edited record. Fields the form
// does not carry are kept, and so is a title that differs from the old role.
func mergeEdit(original, edited *models.Profile) *models.Profile {
	if original == nil {
		return edited
	}
	merged := edited.Clone()
	merged.ID = original.ID
	merged.LinkedIn = original.LinkedIn
	merged.Experience = original.Experience
	merged.Availability = original.Availability
	if original.Title != "" && original.Title != original.Role {
		merged.Title = original.Title
	}
	return merged
}
