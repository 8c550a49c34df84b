package runs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"catalog-reconciler/core/database"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage/mocks"
	"catalog-reconciler/feature/report"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type stubAdapter struct {
	baseline reconcile.Baseline
	current  reconcile.Current
	err      error
}

func (a *stubAdapter) Name() string { return "stub:runs" }

func (a *stubAdapter) LoadBaseline(ctx context.Context) (reconcile.Baseline, error) {
	return a.baseline, a.err
}

func (a *stubAdapter) LoadCurrent(ctx context.Context) (reconcile.Current, error) {
	return a.current, nil
}

func fixtureAdapter() *stubAdapter {
	return &stubAdapter{
		baseline: reconcile.Baseline{
			"oliveyoung_A1": {ID: "oliveyoung_A1", ProductID: "A1", Price: 1880, Quantity: 10, QuantityRecorded: true},
			"oliveyoung_A2": {ID: "oliveyoung_A2", ProductID: "A2", Price: 1000, Quantity: 0, QuantityRecorded: true},
		},
		current: reconcile.Current{
			"A1": {ProductID: "A1", Status: reconcile.StatusSuccess, Availability: reconcile.AvailabilityOnSale, BasePrice: 1850},
			"A2": {ProductID: "A2", Status: reconcile.StatusSuccess, Availability: reconcile.AvailabilityOnSale, BasePrice: 1000},
			"A3": {ProductID: "A3", Status: reconcile.StatusTimeout, ErrorMessage: "navigation timeout"},
		},
	}
}

func setupSQLite(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newTestService(t *testing.T, adapter reconcile.Adapter, repo *Repository, client *mocks.Client) *Service {
	t.Helper()
	opts := reconcile.DefaultOptions()
	spec := &reconcile.Spec{Adapter: adapter, Options: opts}
	svc := NewService(spec, report.NewAssembler(opts, report.Config{Workbooks: true}), repo, nil, "catalog", "runs", zap.NewNop())
	if client != nil {
		svc.client = client
	}
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestNewRun(t *testing.T) {
	opts := reconcile.DefaultOptions()
	res := &reconcile.Result{
		VariantSoldOut:         []reconcile.SoldOutDelta{{ID: "B1_2", ProductID: "B1"}},
		Restocked:              []reconcile.RestockedDelta{{ID: "B2"}},
		AdditionalPriceChanged: []reconcile.PriceChangedDelta{{ID: "B3_1", ProductID: "B3", OldValue: 200, NewValue: 300}},
		Deleted:                []reconcile.DeletedDelta{{ID: "B4", ReasonCode: "timeout", Message: "slow"}},
		Summary:                reconcile.Summary{Products: 4, Observed: 3, Unobserved: 1},
	}
	plan := reconcile.BuildPlan(res, opts)
	now := time.Unix(100, 0)

	run := NewRun("r1", "stub", now, now, res, plan, opts)

	assert.Equal(t, 4, run.Products)
	assert.Equal(t, plan.Summary.TotalActions, run.TotalActions)
	require.Len(t, run.Deltas, 4)

	assert.Equal(t, Delta{RunID: "r1", Category: CategoryVariantSoldOut, ItemID: "oliveyoung_B1", OptionID: "oliveyoung_B1_2"}, run.Deltas[0])
	assert.Equal(t, opts.RestockQuantity, run.Deltas[1].NewValue)
	assert.Equal(t, 300, run.Deltas[2].NewValue)
	assert.Equal(t, "timeout: slow", run.Deltas[3].Reason)
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := setupSQLite(t)

	missing, err := repo.MissingColumns()
	require.NoError(t, err)
	assert.Empty(t, missing)

	older := &Run{ID: "run-old", Source: "s", StartedAt: time.Unix(100, 0)}
	newer := &Run{ID: "run-new", Source: "s", StartedAt: time.Unix(200, 0), Deltas: []Delta{
		{Category: CategorySoldOut, ItemID: "oliveyoung_A1"},
		{Category: CategoryPriceChanged, ItemID: "oliveyoung_A2", OldValue: 1, NewValue: 2},
	}}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	t.Run("List", func(t *testing.T) {
		list, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "run-new", list[0].ID)
		assert.Empty(t, list[0].Deltas)

		limited, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("Get", func(t *testing.T) {
		run, err := repo.Get(ctx, "run-new")
		require.NoError(t, err)
		assert.Len(t, run.Deltas, 2)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})
}

func TestRepository_DriverErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveFails", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO `runs`")).WillReturnError(errors.New("disk full"))
		sqlMock.ExpectRollback()

		err := NewRepository(db).Save(ctx, &Run{ID: "r1"})
		assert.ErrorContains(t, err, "save run r1")
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("GetEmpty", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SELECT .* FROM `runs`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewRepository(db).Get(ctx, "r1")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("ListFails", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SELECT .* FROM `runs`").WillReturnError(errors.New("gone away"))

		_, err := NewRepository(db).List(ctx, 5)
		assert.ErrorContains(t, err, "list runs: gone away")
	})
}

func TestService_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsAndPublishes", func(t *testing.T) {
		repo := setupSQLite(t)
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
		client.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		svc := newTestService(t, fixtureAdapter(), repo, client)
		run, err := svc.Execute(ctx)
		require.NoError(t, err)

		assert.Equal(t, "stub:runs", run.Source)
		assert.Equal(t, 3, run.Products)
		assert.Equal(t, "runs/"+run.ID, run.ArtifactPrefix)
		// price change, restock, deletion
		assert.Equal(t, 3, run.TotalActions)

		stored, err := repo.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Deltas, 3)

		// 11 text artifacts plus workbooks for single price, single stock and delete
		client.AssertNumberOfCalls(t, "PutObject", 14)
	})

	t.Run("WithoutHistoryOrBucket", func(t *testing.T) {
		svc := newTestService(t, fixtureAdapter(), nil, nil)
		run, err := svc.Execute(ctx)
		require.NoError(t, err)
		assert.Empty(t, run.ArtifactPrefix)

		_, err = svc.List(ctx, 10)
		assert.ErrorIs(t, err, ErrHistoryDisabled)
	})

	t.Run("LoadFails", func(t *testing.T) {
		svc := newTestService(t, &stubAdapter{err: errors.New("no workbook")}, nil, nil)
		_, err := svc.Execute(ctx)
		assert.ErrorContains(t, err, "no workbook")
	})

	t.Run("PublishFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, errors.New("denied"))

		svc := newTestService(t, fixtureAdapter(), nil, client)
		_, err := svc.Execute(ctx)
		assert.ErrorContains(t, err, "publish report")
	})
}

func setupTestApp(t *testing.T, repo *Repository) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := newTestService(t, fixtureAdapter(), repo, nil)
	require.NoError(t, NewFeature(svc).Load(app))
	return app
}

func TestHandler(t *testing.T) {
	repo := setupSQLite(t)
	app := setupTestApp(t, repo)

	resp, err := app.Test(httptest.NewRequest("POST", "/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	t.Run("List", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/runs?limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var list []Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/runs/"+created.ID, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var run Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
		assert.Len(t, run.Deltas, 3)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/runs/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_HistoryDisabled(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
