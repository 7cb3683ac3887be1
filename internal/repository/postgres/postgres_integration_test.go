package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/niteshvshukla2026-sudo/event-task-management/config"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	admin, err := repo.CreateUser(ctx, entities.User{
		Name: "Alice", Mobile: "9900000001", PasswordHash: "hash", Role: entities.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, admin.ID)

	bob, err := repo.CreateUser(ctx, entities.User{
		Name: "Bob", Mobile: "9900000002", PasswordHash: "hash", Role: entities.RoleUser,
	})
	require.NoError(t, err)
	carol, err := repo.CreateUser(ctx, entities.User{
		Name: "Carol", Mobile: "9900000003", PasswordHash: "hash", Role: entities.RoleUser,
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{
		Name: "Eve", Mobile: "9900000002", PasswordHash: "hash", Role: entities.RoleUser,
	})
	require.ErrorIs(t, err, entities.ErrMobileExists)

	byMobile, err := repo.GetUserByMobile(ctx, "9900000002")
	require.NoError(t, err)
	require.Equal(t, bob.ID, byMobile.ID)

	admins, err := repo.ListUsersByRole(ctx, entities.RoleAdmin, entities.RoleSuperAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, admin.ID, admins[0].ID)

	event, err := repo.CreateEvent(ctx, entities.Event{
		Title: "Annual Meetup", Venue: "Hall A", Description: "all hands", CreatedBy: admin.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, event.ID)

	team, err := repo.CreateTeam(ctx, event.ID, []string{bob.ID, carol.ID})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{bob.ID, carol.ID}, team.MemberIDs)

	_, err = repo.CreateTeam(ctx, event.ID, []string{bob.ID})
	require.ErrorIs(t, err, entities.ErrTeamExists)

	fetched, err := repo.GetTeamByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, team.ID, fetched.ID)

	memberEvents, err := repo.ListEventsForMember(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, memberEvents, 1)
	require.Equal(t, event.ID, memberEvents[0].ID)

	task, err := repo.CreateTask(ctx, entities.Task{
		Title: "Book venue", Description: "call the hall", EventID: event.ID,
		AssignedTo: bob.ID, AssignedBy: admin.ID, Status: entities.StatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, task.Status)

	mine, err := repo.ListTasksByAssignee(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	completed, err := repo.CompleteTask(ctx, task.ID, "booked for 5pm")
	require.NoError(t, err)
	require.Equal(t, entities.StatusCompleted, completed.Status)
	require.Equal(t, "booked for 5pm", completed.Description)

	_, err = repo.CompleteTask(ctx, task.ID, "booked again")
	require.ErrorIs(t, err, entities.ErrTaskCompleted)

	after, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "booked for 5pm", after.Description)

	note, err := repo.CreateNotification(ctx, entities.Notification{
		UserID: bob.ID, Message: "You have been assigned a new task: Book venue", Type: entities.NotifyTaskAssigned,
	})
	require.NoError(t, err)
	require.False(t, note.IsRead)

	feed, err := repo.ListNotificationsForUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, repo.MarkNotificationRead(ctx, note.ID))

	read, err := repo.GetNotification(ctx, note.ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)

	err = repo.MarkNotificationRead(ctx, "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, entities.ErrNotificationNotFound)

	// Malformed path ids surface as not-found, not a driver error.
	_, err = repo.GetTask(ctx, "not-a-uuid")
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	_, err = repo.GetTeamByEvent(ctx, "not-a-uuid")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	_, err = repo.GetUser(ctx, "not-a-uuid")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	_, err = repo.GetEvent(ctx, "not-a-uuid")
	require.ErrorIs(t, err, entities.ErrEventNotFound)
	err = repo.MarkNotificationRead(ctx, "not-a-uuid")
	require.ErrorIs(t, err, entities.ErrNotificationNotFound)
}

func TestConcurrentCompletionIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	admin, err := repo.CreateUser(ctx, entities.User{
		Name: "Alice", Mobile: "9900000020", PasswordHash: "hash", Role: entities.RoleAdmin,
	})
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, entities.User{
		Name: "Bob", Mobile: "9900000021", PasswordHash: "hash", Role: entities.RoleUser,
	})
	require.NoError(t, err)

	event, err := repo.CreateEvent(ctx, entities.Event{Title: "Offsite", Venue: "Hall B", CreatedBy: admin.ID})
	require.NoError(t, err)

	task, err := repo.CreateTask(ctx, entities.Task{
		Title: "Book venue", Description: "call the hall", EventID: event.ID,
		AssignedTo: bob.ID, AssignedBy: admin.ID, Status: entities.StatusPending,
	})
	require.NoError(t, err)

	remarks := []string{"booked for 5pm", "booked for 6pm"}
	errs := make(chan error, len(remarks))
	var wg sync.WaitGroup
	for _, r := range remarks {
		wg.Add(1)
		go func(r string) {
			defer wg.Done()
			_, err := repo.CompleteTask(ctx, task.ID, r)
			errs <- err
		}(r)
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		if err == nil {
			won++
			continue
		}
		require.ErrorIs(t, err, entities.ErrTaskCompleted)
		lost++
	}
	require.Equal(t, 1, won)
	require.Equal(t, 1, lost)

	final, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusCompleted, final.Status)
	require.Contains(t, remarks, final.Description)
}

func TestTeamForeignKeysIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	user, err := repo.CreateUser(ctx, entities.User{
		Name: "Alice", Mobile: "9900000010", PasswordHash: "hash", Role: entities.RoleUser,
	})
	require.NoError(t, err)

	_, err = repo.CreateTeam(ctx, "00000000-0000-0000-0000-000000000000", []string{user.ID})
	require.ErrorIs(t, err, entities.ErrEventNotFound)

	event, err := repo.CreateEvent(ctx, entities.Event{
		Title: "Offsite", Venue: "Shimla", CreatedBy: user.ID,
	})
	require.NoError(t, err)

	_, err = repo.CreateTeam(ctx, event.ID, []string{"00000000-0000-0000-0000-000000000000"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	// Failed member insert must roll the team row back.
	_, err = repo.GetTeamByEvent(ctx, event.ID)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=event_task_management_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "event_task_management_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=event_task_management_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
