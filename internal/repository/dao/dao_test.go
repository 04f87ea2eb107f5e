package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDB is backed by a throwaway Postgres container started in TestMain.
// Run with -short to skip everything in this package.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("dockertest.NewPool: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=votekeeper",
			"POSTGRES_PASSWORD=votekeeper",
			"POSTGRES_DB=votekeeper_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("pool.RunWithOptions: %v", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=votekeeper password=votekeeper dbname=votekeeper_test sslmode=disable", resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}

		testDB = db
		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("InitTables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("pool.Purge: %v", err)
	}

	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	err := testDB.Exec("TRUNCATE voters, options, questions, elections, administrators RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)
}

func seedAdmin(t *testing.T, email string) Administrator {
	t.Helper()
	admin, err := NewAdministratorDAO(testDB).Insert(context.Background(), Administrator{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "hashed-password",
	})
	require.NoError(t, err)

	return admin
}

func seedElection(t *testing.T, adminID uint, name string) Election {
	t.Helper()
	election, err := NewElectionDAO(testDB).Insert(context.Background(), Election{
		Name:    name,
		AdminID: adminID,
	})
	require.NoError(t, err)

	return election
}

func TestAdministratorDAO_InsertDuplicateEmail(t *testing.T) {
	resetTables(t)

	seedAdmin(t, "ada@example.com")

	_, err := NewAdministratorDAO(testDB).Insert(context.Background(), Administrator{
		FirstName: "Other",
		Email:     "ada@example.com",
		Password:  "hashed-password",
	})
	assert.ErrorIs(t, err, ErrAdminEmailExists)
}

func TestAdministratorDAO_FindByEmail(t *testing.T) {
	resetTables(t)

	created := seedAdmin(t, "ada@example.com")

	d := NewAdministratorDAO(testDB)

	found, err := d.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = d.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdministratorDAO_UpdatePassword(t *testing.T) {
	resetTables(t)

	created := seedAdmin(t, "ada@example.com")

	d := NewAdministratorDAO(testDB)
	require.NoError(t, d.UpdatePassword(context.Background(), created.ID, "new-hash"))

	found, err := d.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.Password)

	assert.ErrorIs(t, d.UpdatePassword(context.Background(), 9999, "new-hash"), ErrAdminNotFound)
}

func TestElectionDAO_ScopedToAdmin(t *testing.T) {
	resetTables(t)

	owner := seedAdmin(t, "ada@example.com")
	other := seedAdmin(t, "grace@example.com")
	election := seedElection(t, owner.ID, "Board Election")

	d := NewElectionDAO(testDB)

	mine, err := d.FindByAdmin(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := d.FindByAdmin(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = d.FindByIDForAdmin(context.Background(), election.ID, other.ID)
	assert.ErrorIs(t, err, ErrElectionNotFound)
}

func TestQuestionDAO_DeleteGuarded(t *testing.T) {
	resetTables(t)

	admin := seedAdmin(t, "ada@example.com")
	election := seedElection(t, admin.ID, "Board Election")

	d := NewQuestionDAO(testDB)

	first, err := d.Insert(context.Background(), Question{Text: "Who should lead?", ElectionID: election.ID})
	require.NoError(t, err)

	// A lone question cannot be removed.
	deleted, err := d.DeleteGuarded(context.Background(), election.ID, first.ID)
	assert.ErrorIs(t, err, ErrMinimumQuestions)
	assert.False(t, deleted)

	count, err := d.CountByElection(context.Background(), election.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// With a sibling the delete goes through.
	_, err = d.Insert(context.Background(), Question{Text: "Approve the budget?", ElectionID: election.ID})
	require.NoError(t, err)

	deleted, err = d.DeleteGuarded(context.Background(), election.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err = d.CountByElection(context.Background(), election.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestQuestionDAO_UpdateScopedToOwner(t *testing.T) {
	resetTables(t)

	owner := seedAdmin(t, "ada@example.com")
	other := seedAdmin(t, "grace@example.com")
	election := seedElection(t, owner.ID, "Board Election")

	d := NewQuestionDAO(testDB)
	question, err := d.Insert(context.Background(), Question{Text: "Who should lead?", ElectionID: election.ID})
	require.NoError(t, err)

	_, err = d.Update(context.Background(), question.ID, other.ID, "Hijacked text", "")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	updated, err := d.Update(context.Background(), question.ID, owner.ID, "Who should chair?", "Updated")
	require.NoError(t, err)
	assert.Equal(t, "Who should chair?", updated.Text)
}

func TestQuestionDAO_Options(t *testing.T) {
	resetTables(t)

	admin := seedAdmin(t, "ada@example.com")
	election := seedElection(t, admin.ID, "Board Election")

	d := NewQuestionDAO(testDB)
	question, err := d.Insert(context.Background(), Question{Text: "Who should lead?", ElectionID: election.ID})
	require.NoError(t, err)

	option, err := d.InsertOption(context.Background(), Option{Label: "Candidate A", QuestionID: question.ID})
	require.NoError(t, err)

	updated, err := d.UpdateOption(context.Background(), option.ID, admin.ID, "Candidate B")
	require.NoError(t, err)
	assert.Equal(t, "Candidate B", updated.Label)

	options, err := d.FindOptionsByQuestion(context.Background(), question.ID)
	require.NoError(t, err)
	require.Len(t, options, 1)

	deleted, err := d.DeleteOption(context.Background(), option.ID, admin.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = d.DeleteOption(context.Background(), option.ID, admin.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestVoterDAO_DuplicatePerElection(t *testing.T) {
	resetTables(t)

	admin := seedAdmin(t, "ada@example.com")
	first := seedElection(t, admin.ID, "Board Election")
	second := seedElection(t, admin.ID, "Budget Election")

	d := NewVoterDAO(testDB)

	_, err := d.Insert(context.Background(), Voter{VoterID: "voter-001", Password: "hash", ElectionID: first.ID})
	require.NoError(t, err)

	// Same voter ID in the same election collides.
	_, err = d.Insert(context.Background(), Voter{VoterID: "voter-001", Password: "hash", ElectionID: first.ID})
	assert.ErrorIs(t, err, ErrVoterIDExists)

	// The same voter ID in a different election is fine.
	_, err = d.Insert(context.Background(), Voter{VoterID: "voter-001", Password: "hash", ElectionID: second.ID})
	assert.NoError(t, err)
}

func TestVoterDAO_DeleteAndCount(t *testing.T) {
	resetTables(t)

	admin := seedAdmin(t, "ada@example.com")
	election := seedElection(t, admin.ID, "Board Election")

	d := NewVoterDAO(testDB)

	voter, err := d.Insert(context.Background(), Voter{VoterID: "voter-001", Password: "hash", ElectionID: election.ID})
	require.NoError(t, err)

	count, err := d.CountByElection(context.Background(), election.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Deleting with the wrong election scope is a no-op.
	deleted, err := d.Delete(context.Background(), voter.ID, election.ID+1)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = d.Delete(context.Background(), voter.ID, election.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err = d.CountByElection(context.Background(), election.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
