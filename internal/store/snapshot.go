package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/models"
)

// Snapshot is the durable state layout: two ordered collections round-tripped
// losslessly through load/save.
type Snapshot struct {
	Users          []models.User           `json:"users"`
	StudentDetails []models.StudentDetails `json:"student_details"`
}

// snapshotStore persists the whole application state as one JSON file.
// It implements both [UserRepository] and [StudentRepository].
//
// Every mutating operation performs load -> mutate -> save as one logical
// unit. The read-modify-write sequence is serialized by a single mutex, so
// concurrent requests cannot lose each other's updates; at file level the
// semantics stay last-writer-wins.
type snapshotStore struct {
	path   string
	mu     sync.RWMutex
	logger *logger.Logger
}

// NewSnapshotStore constructs a snapshot-file store rooted at path.
// The file does not have to exist yet: a cold start yields the empty
// snapshot. The file is read once up front so that a corrupt snapshot is
// reported at startup rather than on the first request.
func NewSnapshotStore(path string, log *logger.Logger) (*snapshotStore, error) {
	s := &snapshotStore{
		path:   path,
		logger: log,
	}

	if _, err := s.load(); err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Msg("snapshot store created")
	return s, nil
}

// load reads the snapshot from disk. A missing file is a valid cold start
// and yields the empty snapshot, not an error.
func (s *snapshotStore) load() (Snapshot, error) {
	snap := Snapshot{
		Users:          []models.User{},
		StudentDetails: []models.StudentDetails{},
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, nil
		}
		return snap, fmt.Errorf("%w: %w", ErrSnapshotRead, err)
	}

	if err = json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("%w: %w", ErrSnapshotRead, err)
	}

	if snap.Users == nil {
		snap.Users = []models.User{}
	}
	if snap.StudentDetails == nil {
		snap.StudentDetails = []models.StudentDetails{}
	}

	return snap, nil
}

// save writes the snapshot back to disk, creating the parent directory if
// needed.
func (s *snapshotStore) save(snap Snapshot) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
		}
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	return nil
}

// CreateUser appends a new user with the next monotonic id (max existing
// id + 1, or 1 on an empty snapshot) and persists the snapshot.
func (s *snapshotStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		log.Err(err).Str("func", "*snapshotStore.CreateUser").Msg("error loading snapshot")
		return models.User{}, err
	}

	var maxID int64
	for _, u := range snap.Users {
		if u.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
		if user.Phone != "" && u.Phone == user.Phone {
			return models.User{}, ErrPhoneAlreadyExists
		}
		if u.UserID > maxID {
			maxID = u.UserID
		}
	}

	user.UserID = maxID + 1
	snap.Users = append(snap.Users, user)

	if err = s.save(snap); err != nil {
		log.Err(err).Str("func", "*snapshotStore.CreateUser").Msg("error saving snapshot")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail scans the snapshot for a user with the given normalized
// email.
func (s *snapshotStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, err := s.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*snapshotStore.FindUserByEmail").Msg("error loading snapshot")
		return models.User{}, err
	}

	for _, u := range snap.Users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// FindUserByID scans the snapshot for a user with the given id.
func (s *snapshotStore) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, err := s.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*snapshotStore.FindUserByID").Msg("error loading snapshot")
		return models.User{}, err
	}

	for _, u := range snap.Users {
		if u.UserID == userID {
			return u, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// UpsertDetails replaces the academic record for details.UserID, or appends
// it when the user has none yet, then persists the snapshot.
func (s *snapshotStore) UpsertDetails(ctx context.Context, details models.StudentDetails) (models.StudentDetails, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		log.Err(err).Str("func", "*snapshotStore.UpsertDetails").Msg("error loading snapshot")
		return models.StudentDetails{}, err
	}

	replaced := false
	for i, d := range snap.StudentDetails {
		if d.UserID == details.UserID {
			snap.StudentDetails[i] = details
			replaced = true
			break
		}
	}
	if !replaced {
		snap.StudentDetails = append(snap.StudentDetails, details)
	}

	if err = s.save(snap); err != nil {
		log.Err(err).Str("func", "*snapshotStore.UpsertDetails").Msg("error saving snapshot")
		return models.StudentDetails{}, err
	}

	return details, nil
}

// FindDetailsByUserID scans the snapshot for the record owned by userID.
func (s *snapshotStore) FindDetailsByUserID(ctx context.Context, userID int64) (models.StudentDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, err := s.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*snapshotStore.FindDetailsByUserID").Msg("error loading snapshot")
		return models.StudentDetails{}, err
	}

	for _, d := range snap.StudentDetails {
		if d.UserID == userID {
			return d, nil
		}
	}

	return models.StudentDetails{}, ErrNoStudentDetails
}
