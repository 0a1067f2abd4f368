package animals

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Animal

	createCalls int
	failCreate  bool
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	r.createCalls++
	if r.failCreate {
		return errors.New("repo: create failed")
	}
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[a.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error {
	a, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	r.byID[id] = a
	return nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListAvailable(ctx context.Context, excludeOwnerID string, f Filter) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if a.Status != StatusAvailable || a.OwnerID == excludeOwnerID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// -------------------------
// Test media store
// -------------------------

type testMediaStore struct {
	saveCalls int
	failAt    int // índice (1-based) del Save que falla; 0 = nunca
	payloads  [][]byte
}

func newTestMediaStore() *testMediaStore {
	return &testMediaStore{}
}

func (s *testMediaStore) Save(ctx context.Context, payload []byte, filename string) (string, error) {
	s.saveCalls++
	if s.failAt > 0 && s.saveCalls == s.failAt {
		return "", errors.New("media: save failed")
	}
	s.payloads = append(s.payloads, payload)
	return fmt.Sprintf("ref-%d", s.saveCalls-1), nil
}

// -------------------------
// Helpers
// -------------------------

func validInput() CreateInput {
	return CreateInput{
		Name:        "Rex",
		Type:        "dog",
		Gender:      "male",
		Race:        "mixed",
		Description: "friendly",
	}
}

func seedAnimal(t *testing.T, repo *testRepo, id, ownerID string, status Status, createdAt time.Time) Animal {
	t.Helper()
	a := Animal{
		ID:        id,
		OwnerID:   ownerID,
		Name:      "Rex",
		Type:      "dog",
		Gender:    "male",
		Race:      "mixed",
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	repo.byID[id] = a
	return a
}

// -------------------------
// Create
// -------------------------

func TestService_Create_OK_SinPictures(t *testing.T) {
	repo := newTestRepo()
	store := newTestMediaStore()
	svc := NewService(repo, store)

	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	result, err := svc.Create(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if result.IsFailure() {
		t.Fatalf("Create returned failure: %v", result.Failure())
	}

	a := result.Value()
	if a.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if a.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", a.OwnerID)
	}
	if a.Status != StatusAvailable {
		t.Fatalf("expected status available, got %s", a.Status)
	}
	if len(a.Pictures) != 0 {
		t.Fatalf("expected no picture refs, got %#v", a.Pictures)
	}
	if a.CreatedAt != now || a.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if store.saveCalls != 0 {
		t.Fatalf("expected no media store calls, got %d", store.saveCalls)
	}
}

func TestService_Create_MissingField_NoSideEffects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"name", func(in *CreateInput) { in.Name = "" }},
		{"type", func(in *CreateInput) { in.Type = "  " }},
		{"gender", func(in *CreateInput) { in.Gender = "" }},
		{"race", func(in *CreateInput) { in.Race = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			store := newTestMediaStore()
			svc := NewService(repo, store)

			in := validInput()
			in.Pictures = [][]byte{[]byte("img")}
			tc.mutate(&in)

			result, err := svc.Create(context.Background(), "user-1", in)
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if !result.IsFailure() {
				t.Fatalf("expected validation failure")
			}
			if result.Failure().Kind != FailureValidation {
				t.Fatalf("expected validation kind, got %s", result.Failure().Kind)
			}
			if repo.createCalls != 0 {
				t.Fatalf("expected no persistence, got %d create calls", repo.createCalls)
			}
			if store.saveCalls != 0 {
				t.Fatalf("expected no media store calls, got %d", store.saveCalls)
			}
		})
	}
}

func TestService_Create_EmptyOwner_Fails(t *testing.T) {
	repo := newTestRepo()
	store := newTestMediaStore()
	svc := NewService(repo, store)

	// El adapter sustituye "" cuando no hay usuario autenticado.
	result, err := svc.Create(context.Background(), "  ", validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !result.IsFailure() || result.Failure().Kind != FailureValidation {
		t.Fatalf("expected validation failure for empty owner")
	}
	if repo.createCalls != 0 || store.saveCalls != 0 {
		t.Fatalf("expected no side effects")
	}
}

func TestService_Create_PicturesEnOrden(t *testing.T) {
	repo := newTestRepo()
	store := newTestMediaStore()
	svc := NewService(repo, store)

	in := validInput()
	in.Pictures = [][]byte{[]byte("img-a"), []byte("img-b"), []byte("img-c")}

	result, err := svc.Create(context.Background(), "user-1", in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if result.IsFailure() {
		t.Fatalf("Create returned failure: %v", result.Failure())
	}

	a := result.Value()
	want := []string{"ref-0", "ref-1", "ref-2"}
	if len(a.Pictures) != len(want) {
		t.Fatalf("expected %d refs, got %d", len(want), len(a.Pictures))
	}
	for i := range want {
		if a.Pictures[i] != want[i] {
			t.Fatalf("refs out of order: got %#v", a.Pictures)
		}
	}
	for i, p := range store.payloads {
		if string(p) != string(in.Pictures[i]) {
			t.Fatalf("payload %d uploaded out of order", i)
		}
	}
}

func TestService_Create_MediaError_NadaPersistido(t *testing.T) {
	repo := newTestRepo()
	store := newTestMediaStore()
	store.failAt = 2
	svc := NewService(repo, store)

	in := validInput()
	in.Pictures = [][]byte{[]byte("img-a"), []byte("img-b")}

	_, err := svc.Create(context.Background(), "user-1", in)
	if err == nil {
		t.Fatalf("expected dependency error from media store")
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected all-or-nothing: no record persisted, got %d create calls", repo.createCalls)
	}
}

// -------------------------
// UpdateStatus
// -------------------------

func TestService_UpdateStatus_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())

	result, err := svc.UpdateStatus(context.Background(), "nope", "user-1", "adopted")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if !result.IsFailure() || result.Failure().Kind != FailureNotFound {
		t.Fatalf("expected not_found failure")
	}
}

func TestService_UpdateStatus_NotFound_AntesQueInvalidStatus(t *testing.T) {
	// Orden de validación: existencia primero, enum después.
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())

	result, err := svc.UpdateStatus(context.Background(), "nope", "user-1", "flying")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if !result.IsFailure() || result.Failure().Kind != FailureNotFound {
		t.Fatalf("expected not_found before invalid_status, got %v", result.Failure())
	}
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())
	seedAnimal(t, repo, "a1", "user-1", StatusAvailable, time.Now())

	result, err := svc.UpdateStatus(context.Background(), "a1", "user-1", "flying")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if !result.IsFailure() || result.Failure().Kind != FailureInvalidStatus {
		t.Fatalf("expected invalid_status failure")
	}
	if repo.byID["a1"].Status != StatusAvailable {
		t.Fatalf("stored record should be unchanged")
	}
}

func TestService_UpdateStatus_OwnerMismatch_Forbidden(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())
	seedAnimal(t, repo, "a1", "user-1", StatusAvailable, time.Now())

	for _, userID := range []string{"user-2", ""} {
		result, err := svc.UpdateStatus(context.Background(), "a1", userID, "adopted")
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if !result.IsFailure() || result.Failure().Kind != FailureForbidden {
			t.Fatalf("expected forbidden failure for userID=%q", userID)
		}
	}

	if repo.byID["a1"].Status != StatusAvailable {
		t.Fatalf("stored record should be unchanged after forbidden updates")
	}
}

func TestService_UpdateStatus_OK(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())

	created := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	seedAnimal(t, repo, "a1", "user-1", StatusAvailable, created)

	now := created.Add(time.Hour)
	svc.now = func() time.Time { return now }

	result, err := svc.UpdateStatus(context.Background(), "a1", "user-1", "adopted")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if result.IsFailure() {
		t.Fatalf("UpdateStatus returned failure: %v", result.Failure())
	}

	a := result.Value()
	if a.Status != StatusAdopted {
		t.Fatalf("expected adopted, got %s", a.Status)
	}
	if a.UpdatedAt != now {
		t.Fatalf("expected UpdatedAt to advance")
	}
	if a.CreatedAt != created {
		t.Fatalf("CreatedAt must not change")
	}
	if repo.byID["a1"].Status != StatusAdopted {
		t.Fatalf("status not persisted")
	}
}

func TestService_UpdateStatus_Idempotente(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())
	seedAnimal(t, repo, "a1", "user-1", StatusAvailable, time.Now())

	first, err := svc.UpdateStatus(context.Background(), "a1", "user-1", "pending")
	if err != nil || first.IsFailure() {
		t.Fatalf("first update failed: %v %v", err, first)
	}
	second, err := svc.UpdateStatus(context.Background(), "a1", "user-1", "pending")
	if err != nil || second.IsFailure() {
		t.Fatalf("second update failed: %v %v", err, second)
	}

	if first.Value().Status != second.Value().Status {
		t.Fatalf("re-applying the same status must leave equal state")
	}
	if repo.byID["a1"].Status != StatusPending {
		t.Fatalf("expected pending after both calls")
	}
}

// -------------------------
// Queries
// -------------------------

func TestService_GetAvailable_ExcluyeProprios_YNoDisponibles(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())

	base := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	seedAnimal(t, repo, "mine", "user-1", StatusAvailable, base)
	seedAnimal(t, repo, "other-ok", "user-2", StatusAvailable, base.Add(time.Minute))
	seedAnimal(t, repo, "other-adopted", "user-2", StatusAdopted, base.Add(2*time.Minute))

	result, err := svc.GetAvailable(context.Background(), "user-1", Filter{})
	if err != nil {
		t.Fatalf("GetAvailable returned error: %v", err)
	}
	if result.IsFailure() {
		t.Fatalf("GetAvailable returned failure: %v", result.Failure())
	}

	items := result.Value()
	if len(items) != 1 || items[0].ID != "other-ok" {
		t.Fatalf("expected only other-ok, got %#v", items)
	}
}

func TestService_GetAvailable_EmptyUser_Fails(t *testing.T) {
	svc := NewService(newTestRepo(), newTestMediaStore())

	result, err := svc.GetAvailable(context.Background(), "", Filter{})
	if err != nil {
		t.Fatalf("GetAvailable returned error: %v", err)
	}
	if !result.IsFailure() || result.Failure().Kind != FailureValidation {
		t.Fatalf("expected validation failure for empty userId")
	}
}

func TestService_GetAvailable_VacioEsExito(t *testing.T) {
	svc := NewService(newTestRepo(), newTestMediaStore())

	result, err := svc.GetAvailable(context.Background(), "user-1", Filter{})
	if err != nil {
		t.Fatalf("GetAvailable returned error: %v", err)
	}
	if result.IsFailure() {
		t.Fatalf("empty result set must be success, got %v", result.Failure())
	}
	if len(result.Value()) != 0 {
		t.Fatalf("expected empty slice")
	}
}

func TestService_GetUserAnimals_TodosLosStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, newTestMediaStore())

	base := time.Now()
	seedAnimal(t, repo, "a1", "user-1", StatusAvailable, base)
	seedAnimal(t, repo, "a2", "user-1", StatusAdopted, base.Add(time.Minute))
	seedAnimal(t, repo, "b1", "user-2", StatusAvailable, base)

	result, err := svc.GetUserAnimals(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetUserAnimals returned error: %v", err)
	}
	if result.IsFailure() {
		t.Fatalf("GetUserAnimals returned failure: %v", result.Failure())
	}

	items := result.Value()
	if len(items) != 2 {
		t.Fatalf("expected 2 animals for user-1, got %d", len(items))
	}
	for _, a := range items {
		if a.OwnerID != "user-1" {
			t.Fatalf("unexpected animal %q owned by %q", a.ID, a.OwnerID)
		}
	}
}

func TestService_GetUserAnimals_SinAnimales_VacioEsExito(t *testing.T) {
	svc := NewService(newTestRepo(), newTestMediaStore())

	result, err := svc.GetUserAnimals(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("GetUserAnimals returned error: %v", err)
	}
	if result.IsFailure() || len(result.Value()) != 0 {
		t.Fatalf("expected empty success")
	}
}

func TestService_GetUserAnimals_EmptyUser_Fails(t *testing.T) {
	svc := NewService(newTestRepo(), newTestMediaStore())

	result, err := svc.GetUserAnimals(context.Background(), "  ")
	if err != nil {
		t.Fatalf("GetUserAnimals returned error: %v", err)
	}
	if !result.IsFailure() || result.Failure().Kind != FailureValidation {
		t.Fatalf("expected validation failure for empty userId")
	}
}

func TestService_Create_RepoError_EsErrorDeDependencia(t *testing.T) {
	repo := newTestRepo()
	repo.failCreate = true
	svc := NewService(repo, newTestMediaStore())

	_, err := svc.Create(context.Background(), "user-1", validInput())
	if err == nil {
		t.Fatalf("expected dependency error from repo")
	}
}
