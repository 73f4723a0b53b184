package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/camiones-api/internal/config"
	"github.com/phrazzld/camiones-api/internal/domain"
	"github.com/phrazzld/camiones-api/internal/service/auth"
	"github.com/phrazzld/camiones-api/internal/service/truck"
	"github.com/phrazzld/camiones-api/internal/store"
)

// memoryTruckStore is an in-memory TruckStore used to exercise the full
// router without a database.
type memoryTruckStore struct {
	mu     sync.Mutex
	nextID int64
	trucks map[int64]domain.Truck
}

var _ store.TruckStore = (*memoryTruckStore)(nil)

func newMemoryTruckStore() *memoryTruckStore {
	return &memoryTruckStore{nextID: 1, trucks: make(map[int64]domain.Truck)}
}

func (m *memoryTruckStore) List(ctx context.Context) ([]domain.Truck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Truck, 0, len(m.trucks))
	for _, tr := range m.trucks {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryTruckStore) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tr, ok := m.trucks[id]
	if !ok {
		return nil, store.ErrTruckNotFound
	}
	return &tr, nil
}

func (m *memoryTruckStore) Create(ctx context.Context, fields domain.TruckFields) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.trucks[id] = domain.Truck{
		ID:            id,
		Color:         fields.Color,
		Matricula:     fields.Matricula,
		Conductor:     fields.Conductor,
		YearOperative: fields.YearOperative,
		Marca:         fields.Marca,
		Modelo:        fields.Modelo,
		Dimension:     fields.Dimension,
		Tipo:          fields.Tipo,
	}
	return id, nil
}

func (m *memoryTruckStore) UpdatePartial(ctx context.Context, id int64, fields []domain.FieldValue) (int64, error) {
	if len(fields) == 0 {
		return 0, store.ErrNoFieldsProvided
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tr, ok := m.trucks[id]
	if !ok {
		return 0, nil
	}
	for _, fv := range fields {
		switch fv.Column {
		case domain.ColumnColor:
			tr.Color = fv.Value.(string)
		case domain.ColumnMatricula:
			tr.Matricula = fv.Value.(string)
		case domain.ColumnConductor:
			tr.Conductor = fv.Value.(string)
		case domain.ColumnYearOperative:
			tr.YearOperative = fv.Value.(int)
		case domain.ColumnMarca:
			tr.Marca = fv.Value.(string)
		case domain.ColumnModelo:
			tr.Modelo = fv.Value.(string)
		case domain.ColumnDimension:
			tr.Dimension = fv.Value.(string)
		case domain.ColumnTipo:
			tr.Tipo = fv.Value.(string)
		}
	}
	m.trucks[id] = tr
	return 1, nil
}

func (m *memoryTruckStore) UpdateFull(ctx context.Context, id int64, fields domain.TruckFields) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trucks[id]; !ok {
		return 0, nil
	}
	m.trucks[id] = domain.Truck{
		ID:            id,
		Color:         fields.Color,
		Matricula:     fields.Matricula,
		Conductor:     fields.Conductor,
		YearOperative: fields.YearOperative,
		Marca:         fields.Marca,
		Modelo:        fields.Modelo,
		Dimension:     fields.Dimension,
		Tipo:          fields.Tipo,
	}
	return 1, nil
}

func (m *memoryTruckStore) Delete(ctx context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trucks[id]; !ok {
		return 0, nil
	}
	delete(m.trucks, id)
	return 1, nil
}

// newTestApplication builds the full application graph with an in-memory
// store and a deterministic clock in place of the real infrastructure.
func newTestApplication(t *testing.T) (*application, *memoryTruckStore) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	trucks := newMemoryTruckStore()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tokens := auth.NewTestTokenService("admin", "secret123", "test-secret-key-at-least-16-bytes", 5*time.Minute, func() time.Time {
		return now
	})

	cfg := &config.Config{}
	cfg.Server.Port = 8883

	return &application{
		config:       cfg,
		logger:       logger,
		truckService: truck.NewService(trucks, logger),
		tokenService: tokens,
	}, trucks
}

func request(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := request(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"usuario":  "admin",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestTruckLifecycle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	payload := map[string]any{
		"color":         "rojo",
		"matricula":     "ABC-123",
		"conductor":     "Juan",
		"yearOperative": 2019,
		"marca":         "Volvo",
		"modelo":        "FH16",
		"dimension":     "12x3x4",
		"tipo":          "cisterna",
	}

	// Create is guarded; without a token it must not reach the store.
	rec := request(t, router, http.MethodPost, "/camion/", "", payload)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, router)

	rec = request(t, router, http.MethodPost, "/camion/", token, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Mensaje string `json:"mensaje"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.Equal(t, int64(1), created.ID)

	// The created truck is readable with every submitted field intact.
	rec = request(t, router, http.MethodGet, "/camion/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Truck
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "rojo", got.Color)
	assert.Equal(t, 2019, got.YearOperative)

	// Partial update touches only the submitted columns.
	rec = request(t, router, http.MethodPut, "/camion/1", "", map[string]string{"color": "azul"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, router, http.MethodGet, "/camion/1", "", nil)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "azul", got.Color)
	assert.Equal(t, "ABC-123", got.Matricula)

	// Full replace rewrites every mutable column.
	payload["color"] = "verde"
	payload["conductor"] = "Pedro"
	rec = request(t, router, http.MethodPatch, "/camion/1", "", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, router, http.MethodGet, "/camion/1", "", nil)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "verde", got.Color)
	assert.Equal(t, "Pedro", got.Conductor)

	// The list shows exactly one truck.
	rec = request(t, router, http.MethodGet, "/camiones/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.Truck
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 1)

	// Delete, then the id reads as a miss.
	rec = request(t, router, http.MethodDelete, "/camion/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, router, http.MethodGet, "/camion/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Deleting again is the soft outcome, still a 200.
	rec = request(t, router, http.MethodDelete, "/camion/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msg struct {
		Mensaje string `json:"mensaje"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
	assert.Equal(t, "Registro no encontrado", msg.Mensaje)
}

func TestGreetingAndHealthEndpoints(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	tests := []struct {
		path string
		body string
	}{
		{"/", "hello, world!"},
		{"/hello", "Hello World!"},
		{"/health", "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := request(t, router, http.MethodGet, tt.path, "", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestEmptyListMessage(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	rec := request(t, router, http.MethodGet, "/camiones/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var msg struct {
		Mensaje string `json:"mensaje"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
	assert.Equal(t, "La lista está vacía", msg.Mensaje)
}
