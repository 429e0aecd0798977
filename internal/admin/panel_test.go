package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Raymond9734/profile-directory/internal/cache"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/notify"
	"github.com/Raymond9734/profile-directory/internal/repository"
	"github.com/Raymond9734/profile-directory/internal/service"
	"github.com/Raymond9734/profile-directory/internal/validation"
)

// flakyRepository fails writes on demand and counts them
type flakyRepository struct {
	repository.ProfileRepository
	failWrites bool
	writes     int
}

func (f *flakyRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	f.writes++
	if f.failWrites {
		return nil, models.NewAPIError(500, "")
	}
	return f.ProfileRepository.Create(ctx, p)
}

func (f *flakyRepository) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	f.writes++
	if f.failWrites {
		return nil, models.NewAPIError(500, "")
	}
	return f.ProfileRepository.Update(ctx, p)
}

func (f *flakyRepository) Delete(ctx context.Context, id int64) error {
	f.writes++
	if f.failWrites {
		return models.NewAPIError(500, "")
	}
	return f.ProfileRepository.Delete(ctx, id)
}

func newTestPanel(t *testing.T) (*Panel, *flakyRepository, *notify.Recorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &flakyRepository{ProfileRepository: repository.NewMemoryRepository(repository.SeedProfiles())}
	svc := service.NewProfileService(repo, cache.NewMemoryStore(cache.DefaultTTL), logger)
	rec := &notify.Recorder{}

	panel := NewPanel(svc, rec, logger)
	if err := panel.Open(context.Background()); err != nil {
		t.Fatalf("failed to open panel: %v", err)
	}
	return panel, repo, rec
}

func fillValidForm(t *testing.T, p *Panel) {
	t.Helper()
	values := map[string]string{
		"name":      "Asha Patil",
		"role":      "Data Scientist",
		"email":     "asha@example.com",
		"phone":     "9876543210",
		"city":      "Aurangabad",
		"state":     "Maharastra",
		"latitude":  "19.8762",
		"longitude": "75.3433",
		"skills":    "Python, Statistics",
	}
	for field, value := range values {
		if err := p.SetField(field, value); err != nil {
			t.Fatalf("SetField(%s) failed: %v", field, err)
		}
	}
}

func ids(profiles []*models.Profile) []int64 {
	out := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}

func TestPanel_Transitions(t *testing.T) {
	panel, _, _ := newTestPanel(t)

	if panel.State() != StateListing {
		t.Fatalf("expected listing, got %s", panel.State())
	}
	if err := panel.Open(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on second open, got %v", err)
	}
	if err := panel.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on cancel while listing, got %v", err)
	}

	if err := panel.StartCreate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if panel.State() != StateCreating {
		t.Errorf("expected creating, got %s", panel.State())
	}
	if panel.Form().Image != validation.DefaultImageURL {
		t.Errorf("expected default image on a new form, got %q", panel.Form().Image)
	}
	if err := panel.Delete(context.Background(), 1); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected delete to be refused while creating, got %v", err)
	}
	panel.SetField("name", "Draft")
	if err := panel.StartCreate(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition creating while creating, got %v", err)
	}
	if err := panel.StartEdit(2); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition editing while creating, got %v", err)
	}
	if panel.Form().Name != "Draft" {
		t.Errorf("expected the open form to be kept, got %+v", panel.Form())
	}

	if err := panel.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if panel.State() != StateListing {
		t.Errorf("expected listing after cancel, got %s", panel.State())
	}

	panel.Close()
	if panel.State() != StateClosed {
		t.Errorf("expected closed, got %s", panel.State())
	}
	if err := panel.StartCreate(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition creating from closed, got %v", err)
	} else if !errors.Is(err, models.ErrConflict) {
		t.Errorf("expected a transition error to match ErrConflict, got %v", err)
	}
}

func TestPanel_SetFieldValidatesLive(t *testing.T) {
	panel, _, _ := newTestPanel(t)
	panel.StartCreate()

	tests := []struct {
		field   string
		value   string
		wantErr string
	}{
		{field: "name", value: "A", wantErr: "Name must be at least 2 characters"},
		{field: "name", value: "Al"},
		{field: "email", value: "a@b", wantErr: "Please enter a valid email"},
		{field: "email", value: "a@b.com"},
		{field: "phone", value: "12345", wantErr: "Please enter a valid phone number"},
		{field: "phone", value: "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			err := panel.SetField(tt.field, tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if _, ok := panel.Errors()[tt.field]; ok {
					t.Errorf("stale error left for %s", tt.field)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %v", tt.wantErr, err)
			}
			if panel.Errors()[tt.field] != tt.wantErr {
				t.Errorf("expected recorded error %q, got %q", tt.wantErr, panel.Errors()[tt.field])
			}
		})
	}
}

func TestPanel_SubmitBlockedWhenInvalid(t *testing.T) {
	panel, repo, rec := newTestPanel(t)
	panel.StartCreate()
	panel.SetField("name", "A")

	_, err := panel.Submit(context.Background())
	var fieldErrs validation.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if repo.writes != 0 {
		t.Errorf("invalid form reached the repository")
	}
	if len(rec.All()) != 0 {
		t.Errorf("expected no notification, got %v", rec.All())
	}
	if panel.State() != StateCreating {
		t.Errorf("expected to stay in creating, got %s", panel.State())
	}
}

func TestPanel_CreateSuccess(t *testing.T) {
	panel, _, rec := newTestPanel(t)
	panel.StartCreate()
	fillValidForm(t, panel)

	created, err := panel.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 5 || created.Title != "Data Scientist" {
		t.Errorf("unexpected created profile %+v", created)
	}
	if panel.State() != StateListing {
		t.Errorf("expected listing, got %s", panel.State())
	}
	if len(panel.Profiles()) != 5 {
		t.Errorf("expected refreshed list of 5, got %d", len(panel.Profiles()))
	}
	if last, _ := rec.Last(); last != CreatedNotification {
		t.Errorf("expected %+v, got %+v", CreatedNotification, last)
	}
}

func TestPanel_CreateFailureKeepsForm(t *testing.T) {
	panel, repo, rec := newTestPanel(t)
	panel.StartCreate()
	fillValidForm(t, panel)
	repo.failWrites = true

	if _, err := panel.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if panel.State() != StateCreating {
		t.Errorf("expected to stay in creating, got %s", panel.State())
	}
	if panel.Form().Name != "Asha Patil" {
		t.Errorf("expected form to stay populated, got %+v", panel.Form())
	}
	last, _ := rec.Last()
	if last != CreateFailed || !last.IsError() {
		t.Errorf("expected %+v, got %+v", CreateFailed, last)
	}
}

func TestPanel_EditKeepsFieldsOutsideForm(t *testing.T) {
	panel, _, rec := newTestPanel(t)

	if err := panel.StartEdit(99); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown profile, got %v", err)
	}

	if err := panel.StartEdit(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if panel.Form().Name != "Mayur Girase" {
		t.Errorf("expected prefilled form, got %+v", panel.Form())
	}
	panel.SetField("city", "Pune")

	updated, err := panel.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 2 || updated.City != "Pune" {
		t.Errorf("unexpected updated profile %+v", updated)
	}
	if updated.Title != "Product Designer" {
		t.Errorf("expected title to be kept, got %q", updated.Title)
	}
	if updated.Availability != "Contract" {
		t.Errorf("expected availability to be kept, got %q", updated.Availability)
	}
	if last, _ := rec.Last(); last != UpdatedNotification {
		t.Errorf("expected %+v, got %+v", UpdatedNotification, last)
	}
}

func TestPanel_EditOneCoordinateBlocked(t *testing.T) {
	panel, repo, _ := newTestPanel(t)
	if err := panel.StartEdit(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := panel.SetField("longitude", ""); err == nil {
		t.Error("expected clearing one coordinate to fail")
	}
	if _, err := panel.Submit(context.Background()); err == nil {
		t.Fatal("expected submit to be blocked")
	}
	if repo.writes != 0 {
		t.Errorf("expected no write, got %d", repo.writes)
	}
	if _, ok := panel.Errors()["longitude"]; !ok {
		t.Errorf("expected a longitude error, got %v", panel.Errors())
	}

	// clearing the pair removes the location and both errors
	if err := panel.SetField("latitude", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs := panel.Errors(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	updated, err := panel.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Location != nil {
		t.Errorf("expected no location, got %+v", updated.Location)
	}
}

func TestPanel_DeleteSuccess(t *testing.T) {
	panel, _, rec := newTestPanel(t)

	if err := panel.Delete(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ids(panel.Profiles())
	want := []int64{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if last, _ := rec.Last(); last != DeletedNotification {
		t.Errorf("expected %+v, got %+v", DeletedNotification, last)
	}
}

func TestPanel_DeleteFailure(t *testing.T) {
	panel, repo, rec := newTestPanel(t)
	repo.failWrites = true

	if err := panel.Delete(context.Background(), 2); err == nil {
		t.Fatal("expected an error")
	}

	if got := ids(panel.Profiles()); len(got) != 4 {
		t.Errorf("expected the list unchanged, got %v", got)
	}
	last, _ := rec.Last()
	if last != DeleteFailed {
		t.Errorf("expected %+v, got %+v", DeleteFailed, last)
	}
	if last.Description != "Failed to delete profile. Please try again." {
		t.Errorf("unexpected description %q", last.Description)
	}
}
