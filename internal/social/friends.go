package social

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/models"
	"github.com/jinwoo-p/sociogram/pkg/logger"
)

// FriendManager applies the friend request/accept/decline transitions.
// Friendship is symmetric and lives as matching snapshot entries on both
// users' records; a pending request lives only on the target's record
// until it is accepted or declined.
type FriendManager struct {
	store Store

	// Serializes transitions per user pair so a concurrent accept and
	// decline on the same pair cannot interleave their two-record updates.
	pairMu sync.Mutex
	pairs  map[string]*sync.Mutex
}

func NewFriendManager(store Store) *FriendManager {
	return &FriendManager{
		store: store,
		pairs: make(map[string]*sync.Mutex),
	}
}

// SendRequest records a pending request on the target's record. The
// requester's own record is untouched until the target accepts.
func (m *FriendManager) SendRequest(requesterID, targetID uuid.UUID) error {
	if requesterID == targetID {
		return ErrValidation
	}

	unlock := m.lockPair(requesterID, targetID)
	defer unlock()

	requester, err := m.store.GetUser(requesterID)
	if err != nil {
		return err
	}

	target, err := m.store.GetUser(targetID)
	if err != nil {
		return err
	}

	for _, req := range target.FriendRequests {
		if req.RequesterID == requesterID {
			return ErrAlreadyRequested
		}
	}
	for _, f := range target.Friends {
		if f.FriendID == requesterID {
			return ErrAlreadyFriends
		}
	}

	target.FriendRequests = append(target.FriendRequests, models.FriendRequest{
		UserID:      target.ID,
		RequesterID: requester.ID,
		FirstName:   requester.FirstName,
		LastName:    requester.LastName,
	})

	return m.store.SaveUserRelations(target)
}

// AcceptRequest turns a pending request into a mutual friendship. This is a
// two-record update: the accepter is persisted first, then the requester.
// If the second save fails the first is reverted; if the revert fails too,
// the graph is left asymmetric and logged distinctly for reconciliation.
func (m *FriendManager) AcceptRequest(accepterID, requesterID uuid.UUID) error {
	unlock := m.lockPair(accepterID, requesterID)
	defer unlock()

	accepter, err := m.store.GetUser(accepterID)
	if err != nil {
		return err
	}

	idx := -1
	for i, req := range accepter.FriendRequests {
		if req.RequesterID == requesterID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrRequestNotFound
	}

	requester, err := m.store.GetUser(requesterID)
	if err != nil {
		return err
	}

	removed := accepter.FriendRequests[idx]
	accepter.FriendRequests = append(accepter.FriendRequests[:idx], accepter.FriendRequests[idx+1:]...)
	accepter.Friends = append(accepter.Friends, models.Friend{
		UserID:    accepter.ID,
		FriendID:  requester.ID,
		FirstName: requester.FirstName,
		LastName:  requester.LastName,
	})

	if err := m.store.SaveUserRelations(accepter); err != nil {
		return err
	}

	requester.Friends = append(requester.Friends, models.Friend{
		UserID:    requester.ID,
		FriendID:  accepter.ID,
		FirstName: accepter.FirstName,
		LastName:  accepter.LastName,
	})

	if err := m.store.SaveUserRelations(requester); err != nil {
		// Compensate: put the accepter back the way it was.
		accepter.Friends = accepter.Friends[:len(accepter.Friends)-1]
		accepter.FriendRequests = append(accepter.FriendRequests, models.FriendRequest{})
		copy(accepter.FriendRequests[idx+1:], accepter.FriendRequests[idx:])
		accepter.FriendRequests[idx] = removed

		if revertErr := m.store.SaveUserRelations(accepter); revertErr != nil {
			logger.Error("graph_inconsistent: friend accept left asymmetric state",
				"accepter", accepterID, "requester", requesterID,
				"save_error", err, "revert_error", revertErr)
		}
		return err
	}

	return nil
}

// DeclineRequest removes a pending request from the decliner's record.
// A missing request is a no-op, so calling it twice is safe.
func (m *FriendManager) DeclineRequest(declinerID, requesterID uuid.UUID) error {
	unlock := m.lockPair(declinerID, requesterID)
	defer unlock()

	decliner, err := m.store.GetUser(declinerID)
	if err != nil {
		return err
	}

	idx := -1
	for i, req := range decliner.FriendRequests {
		if req.RequesterID == requesterID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	decliner.FriendRequests = append(decliner.FriendRequests[:idx], decliner.FriendRequests[idx+1:]...)

	return m.store.SaveUserRelations(decliner)
}

func (m *FriendManager) lockPair(a, b uuid.UUID) func() {
	key := pairKey(a, b)

	m.pairMu.Lock()
	mu, ok := m.pairs[key]
	if !ok {
		mu = &sync.Mutex{}
		m.pairs[key] = mu
	}
	m.pairMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func pairKey(a, b uuid.UUID) string {
	as, bs := a.String(), b.String()
	if strings.Compare(as, bs) > 0 {
		as, bs = bs, as
	}
	return as + ":" + bs
}
