package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository"
)

type fakeVoterRepo struct {
	voters map[uint]domain.Voter
	nextID uint
}

func newFakeVoterRepo() *fakeVoterRepo {
	return &fakeVoterRepo{
		voters: map[uint]domain.Voter{},
		nextID: 1,
	}
}

func (f *fakeVoterRepo) Create(_ context.Context, voter domain.Voter) (domain.Voter, error) {
	for _, v := range f.voters {
		if v.ElectionID == voter.ElectionID && v.VoterID == voter.VoterID {
			return domain.Voter{}, repository.ErrVoterIDExists
		}
	}

	voter.ID = f.nextID
	f.nextID++
	f.voters[voter.ID] = voter

	return voter, nil
}

func (f *fakeVoterRepo) FindByElection(_ context.Context, electionID uint) ([]domain.Voter, error) {
	var out []domain.Voter
	for id := uint(1); id < f.nextID; id++ {
		if v, ok := f.voters[id]; ok && v.ElectionID == electionID {
			out = append(out, v)
		}
	}

	return out, nil
}

func (f *fakeVoterRepo) CountByElection(_ context.Context, electionID uint) (int64, error) {
	var count int64
	for _, v := range f.voters {
		if v.ElectionID == electionID {
			count++
		}
	}

	return count, nil
}

func (f *fakeVoterRepo) Delete(_ context.Context, id, electionID uint) (bool, error) {
	v, ok := f.voters[id]
	if !ok || v.ElectionID != electionID {
		return false, nil
	}
	delete(f.voters, id)

	return true, nil
}

func (f *fakeVoterRepo) UpdatePassword(_ context.Context, id, electionID uint, hashedPassword string) error {
	v, ok := f.voters[id]
	if !ok || v.ElectionID != electionID {
		return repository.ErrVoterNotFound
	}

	v.Password = hashedPassword
	f.voters[id] = v

	return nil
}

func voterServiceFixture(t *testing.T) (*VoterService, *fakeVoterRepo, domain.Election) {
	t.Helper()

	elections := newFakeElectionRepo()
	election, err := elections.Create(context.Background(), domain.Election{Name: "Board Election", AdminID: 1})
	require.NoError(t, err)

	repo := newFakeVoterRepo()

	return NewVoterService(repo, elections), repo, election
}

func TestVoterService_Create(t *testing.T) {
	svc, repo, election := voterServiceFixture(t)

	voter, err := svc.Create(context.Background(), election.ID, 1, "voter-001", "ballotsecret")
	require.NoError(t, err)
	assert.NotZero(t, voter.ID)
	assert.Equal(t, "voter-001", voter.VoterID)
	assert.False(t, voter.Voted)

	// The stored credential is hashed, never the plaintext.
	stored := repo.voters[voter.ID]
	assert.NotEqual(t, "ballotsecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("ballotsecret")))
}

func TestVoterService_CreateMissingFields(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	_, err := svc.Create(context.Background(), election.ID, 1, "", "ballotsecret")
	assert.ErrorIs(t, err, ErrVoterFieldsRequired)

	_, err = svc.Create(context.Background(), election.ID, 1, "voter-001", "")
	assert.ErrorIs(t, err, ErrVoterFieldsRequired)
}

func TestVoterService_CreateDuplicateVoterID(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	_, err := svc.Create(context.Background(), election.ID, 1, "voter-001", "ballotsecret")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), election.ID, 1, "voter-001", "othersecret")
	assert.ErrorIs(t, err, ErrVoterIDExists)
}

func TestVoterService_CreateRejectsOtherAdmin(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	_, err := svc.Create(context.Background(), election.ID, 2, "voter-001", "ballotsecret")
	assert.ErrorIs(t, err, ErrElectionNotFound)
}

func TestVoterService_ListAndCount(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	_, err := svc.Create(context.Background(), election.ID, 1, "voter-001", "ballotsecret")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), election.ID, 1, "voter-002", "ballotsecret")
	require.NoError(t, err)

	voters, err := svc.List(context.Background(), election.ID, 1)
	require.NoError(t, err)
	assert.Len(t, voters, 2)

	count, err := svc.Count(context.Background(), election.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVoterService_Delete(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	voter, err := svc.Create(context.Background(), election.ID, 1, "voter-001", "ballotsecret")
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), election.ID, voter.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(context.Background(), election.ID, voter.ID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestVoterService_ResetPassword(t *testing.T) {
	svc, repo, election := voterServiceFixture(t)

	voter, err := svc.Create(context.Background(), election.ID, 1, "voter-001", "ballotsecret")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), election.ID, voter.ID, 1, "freshsecret")
	require.NoError(t, err)

	stored := repo.voters[voter.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("freshsecret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("ballotsecret")))
}

func TestVoterService_ResetPasswordTooShort(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	err := svc.ResetPassword(context.Background(), election.ID, 1, 1, "tiny")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestVoterService_ResetPasswordUnknownVoter(t *testing.T) {
	svc, _, election := voterServiceFixture(t)

	err := svc.ResetPassword(context.Background(), election.ID, 99, 1, "freshsecret")
	assert.ErrorIs(t, err, ErrVoterNotFound)
}
