package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coffeetech/farms/internal/application/collaborator/dto"
	"github.com/coffeetech/farms/internal/application/collaborator/usecases"
	"github.com/coffeetech/farms/internal/interfaces/http/handlers/testutil"
	"github.com/coffeetech/farms/internal/shared/errors"
)

type mockListCollaboratorsUC struct {
	result *dto.ListCollaboratorsResponse
	err    error
	got    usecases.ListCollaboratorsQuery
}

func (m *mockListCollaboratorsUC) Execute(ctx context.Context, query usecases.ListCollaboratorsQuery) (*dto.ListCollaboratorsResponse, error) {
	m.got = query
	return m.result, m.err
}

type mockEditCollaboratorRoleUC struct {
	result *usecases.EditCollaboratorRoleResult
	err    error
	called bool
	got    usecases.EditCollaboratorRoleCommand
}

func (m *mockEditCollaboratorRoleUC) Execute(ctx context.Context, cmd usecases.EditCollaboratorRoleCommand) (*usecases.EditCollaboratorRoleResult, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockDeleteCollaboratorUC struct {
	result *usecases.DeleteCollaboratorResult
	err    error
	called bool
	got    usecases.DeleteCollaboratorCommand
}

func (m *mockDeleteCollaboratorUC) Execute(ctx context.Context, cmd usecases.DeleteCollaboratorCommand) (*usecases.DeleteCollaboratorResult, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

func newTestCollaboratorHandler() (*CollaboratorHandler, *mockListCollaboratorsUC, *mockEditCollaboratorRoleUC, *mockDeleteCollaboratorUC) {
	list := &mockListCollaboratorsUC{}
	edit := &mockEditCollaboratorRoleUC{}
	del := &mockDeleteCollaboratorUC{}
	return NewCollaboratorHandler(list, edit, del, testutil.NewMockLogger()), list, edit, del
}

func TestCollaboratorHandler_ListCollaborators(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, list, _, _ := newTestCollaboratorHandler()
		list.result = &dto.ListCollaboratorsResponse{Collaborators: []dto.CollaboratorDTO{
			{UserRoleID: 200, UserID: 2, UserName: "Olga", RoleName: "Operador de campo"},
		}}

		c, w := testutil.NewTestContext(http.MethodGet, "/collaborators/list-collaborators", nil)
		testutil.SetQueryParams(c, map[string]string{"farm_id": "4"})
		testutil.SetAuthContext(c, 1)

		h.ListCollaborators(c)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parse(t, w)
		assert.Equal(t, "Colaboradores obtenidos exitosamente", resp.Message)
		assert.Contains(t, string(resp.Data), `"user_name":"Olga"`)
		assert.Equal(t, usecases.ListCollaboratorsQuery{RequesterID: 1, FarmID: 4}, list.got)
	})

	t.Run("missing farm_id", func(t *testing.T) {
		h, _, _, _ := newTestCollaboratorHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/collaborators/list-collaborators", nil)
		testutil.SetAuthContext(c, 1)

		h.ListCollaborators(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "El parámetro `farm_id` es obligatorio", parse(t, w).Message)
	})
}

func TestCollaboratorHandler_EditCollaboratorRole(t *testing.T) {
	t.Run("success returns use case message", func(t *testing.T) {
		h, _, edit, _ := newTestCollaboratorHandler()
		edit.result = &usecases.EditCollaboratorRoleResult{
			Message: "Rol del colaborador 'Olga' actualizado a 'Administrador de finca' exitosamente",
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/collaborators/edit-collaborator-role", map[string]any{
			"collaborator_id": 2, "new_role_id": 2,
		})
		testutil.SetQueryParams(c, map[string]string{"farm_id": "4"})
		testutil.SetAuthContext(c, 1)

		h.EditCollaboratorRole(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, edit.result.Message, parse(t, w).Message)
		assert.Equal(t, usecases.EditCollaboratorRoleCommand{RequesterID: 1, FarmID: 4, CollaboratorID: 2, NewRoleID: 2}, edit.got)
	})

	t.Run("self edit forbidden", func(t *testing.T) {
		h, _, edit, _ := newTestCollaboratorHandler()
		edit.err = errors.NewForbiddenError("No puedes cambiar tu propio rol")

		c, w := testutil.NewTestContext(http.MethodPost, "/collaborators/edit-collaborator-role", map[string]any{
			"collaborator_id": 1, "new_role_id": 2,
		})
		testutil.SetQueryParams(c, map[string]string{"farm_id": "4"})
		testutil.SetAuthContext(c, 1)

		h.EditCollaboratorRole(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "No puedes cambiar tu propio rol", parse(t, w).Message)
	})

	t.Run("zero role id rejected before use case", func(t *testing.T) {
		h, _, edit, _ := newTestCollaboratorHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/collaborators/edit-collaborator-role", map[string]any{
			"collaborator_id": 2, "new_role_id": 0,
		})
		testutil.SetQueryParams(c, map[string]string{"farm_id": "4"})
		testutil.SetAuthContext(c, 1)

		h.EditCollaboratorRole(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, edit.called)
	})
}

func TestCollaboratorHandler_DeleteCollaborator(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		farmID     string
		ucResult   *usecases.DeleteCollaboratorResult
		ucErr      error
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "success",
			body:       map[string]any{"collaborator_id": 2},
			farmID:     "4",
			ucResult:   &usecases.DeleteCollaboratorResult{Message: "Colaborador 'Olga' eliminado exitosamente de la finca 'A'"},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "non-positive collaborator id",
			body:       map[string]any{"collaborator_id": -1},
			farmID:     "4",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad farm id",
			body:       map[string]any{"collaborator_id": 2},
			farmID:     "zero",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "remote failure",
			body:       map[string]any{"collaborator_id": 2},
			farmID:     "4",
			ucErr:      errors.NewInternalError("Error al eliminar el colaborador"),
			wantStatus: http.StatusInternalServerError,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, del := newTestCollaboratorHandler()
			del.result = tt.ucResult
			del.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/collaborators/delete-collaborator", tt.body)
			testutil.SetQueryParams(c, map[string]string{"farm_id": tt.farmID})
			testutil.SetAuthContext(c, 1)

			h.DeleteCollaborator(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, del.called)
			if tt.ucResult != nil {
				assert.Equal(t, tt.ucResult.Message, parse(t, w).Message)
			}
		})
	}
}
