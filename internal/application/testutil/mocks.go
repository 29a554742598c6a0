// Package testutil provides in-memory repositories and a scriptable user
// service for testing the application layer.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/domain/state"
	"github.com/coffeetech/farms/internal/infrastructure/userservice"
)

// State ids seeded by NewMockStateRepository for every category.
const (
	ActiveStateID   uint = 1
	InactiveStateID uint = 2
)

// MockStateRepository serves the three state tables from maps keyed by name.
// Delete a key to simulate missing reference data.
type MockStateRepository struct {
	FarmStates         map[string]uint
	PlotStates         map[string]uint
	UserRoleFarmStates map[string]uint
}

func NewMockStateRepository() *MockStateRepository {
	seed := func() map[string]uint {
		return map[string]uint{state.NameActive: ActiveStateID, state.NameInactive: InactiveStateID}
	}
	return &MockStateRepository{
		FarmStates:         seed(),
		PlotStates:         seed(),
		UserRoleFarmStates: seed(),
	}
}

func find(states map[string]uint, name string) (*state.State, error) {
	id, ok := states[name]
	if !ok {
		return nil, nil
	}
	return &state.State{ID: id, Name: name}, nil
}

func (m *MockStateRepository) FindFarmState(_ context.Context, name string) (*state.State, error) {
	return find(m.FarmStates, name)
}

func (m *MockStateRepository) FindPlotState(_ context.Context, name string) (*state.State, error) {
	return find(m.PlotStates, name)
}

func (m *MockStateRepository) FindUserRoleFarmState(_ context.Context, name string) (*state.State, error) {
	return find(m.UserRoleFarmStates, name)
}

func stateName(id uint) string {
	switch id {
	case ActiveStateID:
		return state.NameActive
	case InactiveStateID:
		return state.NameInactive
	default:
		return ""
	}
}

// MockUserRoleFarmRepository stores copies of farm associations.
type MockUserRoleFarmRepository struct {
	mu     sync.RWMutex
	rows   map[uint]collaborator.UserRoleFarm
	nextID uint

	CreateErr error
	UpdateErr error
	FindErr   error
}

func NewMockUserRoleFarmRepository() *MockUserRoleFarmRepository {
	return &MockUserRoleFarmRepository{rows: make(map[uint]collaborator.UserRoleFarm)}
}

// Seed inserts an association directly and returns it.
func (m *MockUserRoleFarmRepository) Seed(userRoleID, farmID, stateID uint) *collaborator.UserRoleFarm {
	urf, err := collaborator.NewUserRoleFarm(userRoleID, farmID, stateID)
	if err != nil {
		panic(err)
	}
	if err := m.Create(context.Background(), urf); err != nil {
		panic(err)
	}
	return urf
}

func (m *MockUserRoleFarmRepository) Create(_ context.Context, urf *collaborator.UserRoleFarm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := urf.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[urf.ID()] = *urf
	return nil
}

func (m *MockUserRoleFarmRepository) Update(_ context.Context, urf *collaborator.UserRoleFarm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.rows[urf.ID()]; !ok {
		return collaborator.ErrUserRoleFarmNotFound
	}
	m.rows[urf.ID()] = *urf
	return nil
}

func (m *MockUserRoleFarmRepository) FindForFarm(_ context.Context, userRoleIDs []uint, farmID, stateID uint) (*collaborator.UserRoleFarm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, row := range m.sorted() {
		if row.FarmID() != farmID || !row.IsInState(stateID) {
			continue
		}
		for _, id := range userRoleIDs {
			if row.UserRoleID() == id {
				c := row
				return &c, nil
			}
		}
	}
	return nil, nil
}

func (m *MockUserRoleFarmRepository) ListByFarm(_ context.Context, farmID, stateID uint) ([]*collaborator.UserRoleFarm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []*collaborator.UserRoleFarm
	for _, row := range m.sorted() {
		if row.FarmID() == farmID && row.IsInState(stateID) {
			c := row
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *MockUserRoleFarmRepository) UpdateStateByFarm(_ context.Context, farmID, stateID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return 0, m.UpdateErr
	}
	var n int64
	for id, row := range m.rows {
		if row.FarmID() == farmID {
			row.SetState(stateID)
			m.rows[id] = row
			n++
		}
	}
	return n, nil
}

// Get returns a copy of the stored row, or nil.
func (m *MockUserRoleFarmRepository) Get(id uint) *collaborator.UserRoleFarm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.rows[id]
	if !ok {
		return nil
	}
	return &row
}

func (m *MockUserRoleFarmRepository) sorted() []collaborator.UserRoleFarm {
	ids := make([]uint, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]collaborator.UserRoleFarm, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out
}

// MockFarmRepository stores copies of farms and answers membership queries
// against an association repository.
type MockFarmRepository struct {
	mu           sync.RWMutex
	farms        map[uint]farm.Farm
	nextID       uint
	areaUnits    map[uint]farm.AreaUnit
	associations *MockUserRoleFarmRepository

	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
}

// NewMockFarmRepository seeds the area unit "Hectáreas" with id 1.
func NewMockFarmRepository(associations *MockUserRoleFarmRepository) *MockFarmRepository {
	return &MockFarmRepository{
		farms:        make(map[uint]farm.Farm),
		areaUnits:    map[uint]farm.AreaUnit{1: {ID: 1, Name: "Hectáreas", Abbreviation: "ha"}},
		associations: associations,
	}
}

// Seed inserts an active farm directly and returns it.
func (m *MockFarmRepository) Seed(name string, area float64, stateID uint) *farm.Farm {
	f, err := farm.NewFarm(name, area, 1, stateID)
	if err != nil {
		panic(err)
	}
	if err := m.Create(context.Background(), f); err != nil {
		panic(err)
	}
	return f
}

func (m *MockFarmRepository) Create(_ context.Context, f *farm.Farm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := f.SetID(m.nextID); err != nil {
		return err
	}
	m.farms[f.ID()] = *f
	return nil
}

func (m *MockFarmRepository) Update(_ context.Context, f *farm.Farm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.farms[f.ID()]; !ok {
		return farm.ErrFarmNotFound
	}
	m.farms[f.ID()] = *f
	return nil
}

func (m *MockFarmRepository) GetByID(_ context.Context, id uint) (*farm.Farm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	f, ok := m.farms[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *MockFarmRepository) GetDetail(_ context.Context, id uint) (*farm.Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	f, ok := m.farms[id]
	if !ok {
		return nil, nil
	}
	return m.summary(&f, 0), nil
}

func (m *MockFarmRepository) ExistsActiveName(ctx context.Context, name string, filter farm.MembershipFilter, excludeID uint) (bool, error) {
	summaries, err := m.ListForUserRoles(ctx, filter)
	if err != nil {
		return false, err
	}
	for _, s := range summaries {
		if s.Name == name && s.FarmID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockFarmRepository) ListForUserRoles(_ context.Context, filter farm.MembershipFilter) ([]*farm.Summary, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.associations.mu.RLock()
	rows := m.associations.sorted()
	m.associations.mu.RUnlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*farm.Summary
	for _, row := range rows {
		if !row.IsInState(filter.UserRoleFarmStateID) || !containsID(filter.UserRoleIDs, row.UserRoleID()) {
			continue
		}
		f, ok := m.farms[row.FarmID()]
		if !ok || !f.IsInState(filter.FarmStateID) {
			continue
		}
		out = append(out, m.summary(&f, row.UserRoleID()))
	}
	return out, nil
}

func (m *MockFarmRepository) GetForUserRoles(ctx context.Context, farmID uint, filter farm.MembershipFilter) (*farm.Summary, error) {
	summaries, err := m.ListForUserRoles(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, s := range summaries {
		if s.FarmID == farmID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *MockFarmRepository) GetAreaUnit(_ context.Context, id uint) (*farm.AreaUnit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.areaUnits[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *MockFarmRepository) ListAreaUnits(_ context.Context) ([]*farm.AreaUnit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*farm.AreaUnit, 0, len(m.areaUnits))
	for id := uint(1); id <= uint(len(m.areaUnits)); id++ {
		if u, ok := m.areaUnits[id]; ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

// Get returns a copy of the stored farm, or nil.
func (m *MockFarmRepository) Get(id uint) *farm.Farm {
	f, _ := m.GetByID(context.Background(), id)
	return f
}

func (m *MockFarmRepository) summary(f *farm.Farm, userRoleID uint) *farm.Summary {
	unit := m.areaUnits[f.AreaUnitID()]
	return &farm.Summary{
		FarmID:      f.ID(),
		Name:        f.Name(),
		Area:        f.Area(),
		AreaUnitID:  f.AreaUnitID(),
		AreaUnit:    unit.Name,
		FarmStateID: f.FarmStateID(),
		FarmState:   stateName(f.FarmStateID()),
		UserRoleID:  userRoleID,
	}
}

// MockPlotRepository stores copies of plots. Varieties 1-3 are seeded as
// Castillo, Caturra and Colombia.
type MockPlotRepository struct {
	mu        sync.RWMutex
	plots     map[uint]plot.Plot
	nextID    uint
	varieties map[uint]plot.CoffeeVariety

	CreateErr error
	UpdateErr error
	GetErr    error
}

func NewMockPlotRepository() *MockPlotRepository {
	return &MockPlotRepository{
		plots: make(map[uint]plot.Plot),
		varieties: map[uint]plot.CoffeeVariety{
			1: {ID: 1, Name: "Castillo"},
			2: {ID: 2, Name: "Caturra"},
			3: {ID: 3, Name: "Colombia"},
		},
	}
}

// Seed inserts a plot directly and returns it.
func (m *MockPlotRepository) Seed(name string, varietyID uint, loc plot.Location, farmID, stateID uint) *plot.Plot {
	p, err := plot.NewPlot(name, varietyID, loc, farmID, stateID)
	if err != nil {
		panic(err)
	}
	if err := m.Create(context.Background(), p); err != nil {
		panic(err)
	}
	return p
}

func (m *MockPlotRepository) Create(_ context.Context, p *plot.Plot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := p.SetID(m.nextID); err != nil {
		return err
	}
	m.plots[p.ID()] = *p
	return nil
}

func (m *MockPlotRepository) Update(_ context.Context, p *plot.Plot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.plots[p.ID()]; !ok {
		return plot.ErrPlotNotFound
	}
	m.plots[p.ID()] = *p
	return nil
}

func (m *MockPlotRepository) GetByIDInState(_ context.Context, id, plotStateID uint) (*plot.Plot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.plots[id]
	if !ok || p.PlotStateID() != plotStateID {
		return nil, nil
	}
	return &p, nil
}

func (m *MockPlotRepository) FindByFarmAndName(_ context.Context, farmID uint, name string, plotStateID uint) (*plot.Plot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, p := range m.sorted() {
		if p.FarmID() == farmID && p.Name() == name && p.PlotStateID() == plotStateID {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockPlotRepository) ExistsByFarmAndName(ctx context.Context, farmID uint, name string, plotStateID, excludeID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return false, m.GetErr
	}
	for _, p := range m.plots {
		if p.FarmID() == farmID && p.Name() == name && p.PlotStateID() == plotStateID && p.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockPlotRepository) ListByFarm(_ context.Context, farmID, plotStateID uint) ([]*plot.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	out := []*plot.Detail{}
	for _, p := range m.sorted() {
		if p.FarmID() == farmID && p.PlotStateID() == plotStateID {
			c := p
			out = append(out, m.detail(&c))
		}
	}
	return out, nil
}

func (m *MockPlotRepository) GetDetail(_ context.Context, id, plotStateID uint) (*plot.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.plots[id]
	if !ok || p.PlotStateID() != plotStateID {
		return nil, nil
	}
	return m.detail(&p), nil
}

func (m *MockPlotRepository) GetCoffeeVariety(_ context.Context, id uint) (*plot.CoffeeVariety, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.varieties[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *MockPlotRepository) ListCoffeeVarieties(_ context.Context) ([]*plot.CoffeeVariety, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	out := make([]*plot.CoffeeVariety, 0, len(m.varieties))
	for id := uint(1); id <= uint(len(m.varieties)); id++ {
		if v, ok := m.varieties[id]; ok {
			out = append(out, &v)
		}
	}
	return out, nil
}

// Get returns a copy of the stored plot, or nil.
func (m *MockPlotRepository) Get(id uint) *plot.Plot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plots[id]
	if !ok {
		return nil
	}
	return &p
}

// Count returns the number of stored plots in any state.
func (m *MockPlotRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plots)
}

func (m *MockPlotRepository) detail(p *plot.Plot) *plot.Detail {
	return &plot.Detail{
		PlotID:            p.ID(),
		Name:              p.Name(),
		CoffeeVarietyID:   p.CoffeeVarietyID(),
		CoffeeVarietyName: m.varieties[p.CoffeeVarietyID()].Name,
		Location:          p.Location(),
		FarmID:            p.FarmID(),
	}
}

func (m *MockPlotRepository) sorted() []plot.Plot {
	ids := make([]uint, 0, len(m.plots))
	for id := range m.plots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]plot.Plot, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.plots[id])
	}
	return out
}

// MockTransactor runs fn directly. CommitErr is returned after fn succeeds
// to simulate a failed commit.
type MockTransactor struct {
	Calls     int
	CommitErr error
}

func (m *MockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.CommitErr
}

// MockUserService scripts the remote user service. Unset funcs return
// zero values: no role ids, role "Unknown", no permissions.
type MockUserService struct {
	mu sync.Mutex

	GetUserRoleIDsFunc            func(ctx context.Context, userID uint) ([]uint, error)
	GetRoleNameForUserRoleFunc    func(ctx context.Context, userRoleID uint) string
	GetRoleNameByIDFunc           func(ctx context.Context, roleID uint) (string, error)
	GetCollaboratorsInfoFunc      func(ctx context.Context, userRoleIDs []uint) ([]collaborator.Info, error)
	GetPermissionsForUserRoleFunc func(ctx context.Context, userRoleID uint) ([]string, error)
	CreateUserRoleFunc            func(ctx context.Context, userID uint, roleName string) (uint, error)
	CreateUserRoleForRoleFunc     func(ctx context.Context, userID, roleID uint) (uint, error)
	UpdateUserRoleFunc            func(ctx context.Context, userRoleID, newRoleID uint) error
	DeleteUserRoleFunc            func(ctx context.Context, userRoleID uint) error
	VerifySessionTokenFunc        func(ctx context.Context, token string) (*userservice.User, error)

	CreatedForRole []uint
	Deleted        []uint
}

func (m *MockUserService) GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.GetUserRoleIDsFunc != nil {
		return m.GetUserRoleIDsFunc(ctx, userID)
	}
	return []uint{}, nil
}

func (m *MockUserService) GetRoleNameForUserRole(ctx context.Context, userRoleID uint) string {
	if m.GetRoleNameForUserRoleFunc != nil {
		return m.GetRoleNameForUserRoleFunc(ctx, userRoleID)
	}
	return collaborator.RoleUnknown
}

func (m *MockUserService) GetRoleNameByID(ctx context.Context, roleID uint) (string, error) {
	if m.GetRoleNameByIDFunc != nil {
		return m.GetRoleNameByIDFunc(ctx, roleID)
	}
	return "", userservice.ErrNotFound
}

func (m *MockUserService) GetCollaboratorsInfo(ctx context.Context, userRoleIDs []uint) ([]collaborator.Info, error) {
	if m.GetCollaboratorsInfoFunc != nil {
		return m.GetCollaboratorsInfoFunc(ctx, userRoleIDs)
	}
	return []collaborator.Info{}, nil
}

func (m *MockUserService) GetPermissionsForUserRole(ctx context.Context, userRoleID uint) ([]string, error) {
	if m.GetPermissionsForUserRoleFunc != nil {
		return m.GetPermissionsForUserRoleFunc(ctx, userRoleID)
	}
	return []string{}, nil
}

func (m *MockUserService) CreateUserRole(ctx context.Context, userID uint, roleName string) (uint, error) {
	if m.CreateUserRoleFunc != nil {
		return m.CreateUserRoleFunc(ctx, userID, roleName)
	}
	return 0, userservice.ErrMalformedResponse
}

func (m *MockUserService) CreateUserRoleForRole(ctx context.Context, userID, roleID uint) (uint, error) {
	m.mu.Lock()
	m.CreatedForRole = append(m.CreatedForRole, roleID)
	m.mu.Unlock()
	if m.CreateUserRoleForRoleFunc != nil {
		return m.CreateUserRoleForRoleFunc(ctx, userID, roleID)
	}
	return 0, userservice.ErrMalformedResponse
}

func (m *MockUserService) UpdateUserRole(ctx context.Context, userRoleID, newRoleID uint) error {
	if m.UpdateUserRoleFunc != nil {
		return m.UpdateUserRoleFunc(ctx, userRoleID, newRoleID)
	}
	return nil
}

func (m *MockUserService) DeleteUserRole(ctx context.Context, userRoleID uint) error {
	m.mu.Lock()
	m.Deleted = append(m.Deleted, userRoleID)
	m.mu.Unlock()
	if m.DeleteUserRoleFunc != nil {
		return m.DeleteUserRoleFunc(ctx, userRoleID)
	}
	return nil
}

func (m *MockUserService) VerifySessionToken(ctx context.Context, token string) (*userservice.User, error) {
	if m.VerifySessionTokenFunc != nil {
		return m.VerifySessionTokenFunc(ctx, token)
	}
	return nil, userservice.ErrNotFound
}

// RoleIDs returns a GetUserRoleIDsFunc that serves fixed ids per user.
func RoleIDs(byUser map[uint][]uint) func(context.Context, uint) ([]uint, error) {
	return func(_ context.Context, userID uint) ([]uint, error) {
		return append([]uint{}, byUser[userID]...), nil
	}
}

// RoleNames returns a GetRoleNameForUserRoleFunc backed by a map; missing
// ids resolve to "Unknown".
func RoleNames(byUserRole map[uint]string) func(context.Context, uint) string {
	return func(_ context.Context, userRoleID uint) string {
		if name, ok := byUserRole[userRoleID]; ok {
			return name
		}
		return collaborator.RoleUnknown
	}
}

// Permissions returns a GetPermissionsForUserRoleFunc backed by a map.
func Permissions(byUserRole map[uint][]string) func(context.Context, uint) ([]string, error) {
	return func(_ context.Context, userRoleID uint) ([]string, error) {
		return append([]string{}, byUserRole[userRoleID]...), nil
	}
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
