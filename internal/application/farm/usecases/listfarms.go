package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgListFarmsFailed = "Error al obtener la lista de fincas"

	// roleLookupConcurrency bounds the parallel role-name calls per request.
	roleLookupConcurrency = 8
)

type ListFarmsQuery struct {
	UserID uint
}

type ListFarmsUseCase struct {
	farms  farm.Repository
	guard  *access.Guard
	users  UserService
	logger logger.Interface
}

func NewListFarmsUseCase(farms farm.Repository, guard *access.Guard, users UserService, logger logger.Interface) *ListFarmsUseCase {
	return &ListFarmsUseCase{
		farms:  farms,
		guard:  guard,
		users:  users,
		logger: logger,
	}
}

func (uc *ListFarmsUseCase) Execute(ctx context.Context, query ListFarmsQuery) (*dto.ListFarmsResponse, error) {
	uc.logger.Infow("listing farms", "user_id", query.UserID)

	filter, err := membershipFilter(ctx, uc.guard, query.UserID)
	if err != nil {
		return nil, err
	}

	summaries, err := uc.farms.ListForUserRoles(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list farms", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError(msgListFarmsFailed)
	}

	farms, err := uc.withRoles(ctx, summaries)
	if err != nil {
		uc.logger.Errorw("failed to resolve farm roles", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError(msgListFarmsFailed)
	}

	return &dto.ListFarmsResponse{Farms: farms}, nil
}

// withRoles resolves the requester's role on every farm concurrently,
// keeping the repository order.
func (uc *ListFarmsUseCase) withRoles(ctx context.Context, summaries []*farm.Summary) ([]dto.FarmDTO, error) {
	out := make([]dto.FarmDTO, len(summaries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(roleLookupConcurrency)
	for i, s := range summaries {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = dto.ToFarmDTO(s, uc.users.GetRoleNameForUserRole(ctx, s.UserRoleID))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// membershipFilter scopes farm queries to the active farms the user is
// actively associated with.
func membershipFilter(ctx context.Context, guard *access.Guard, userID uint) (farm.MembershipFilter, error) {
	activeFarm, err := guard.ActiveState(ctx, guard.States().Farm)
	if err != nil {
		return farm.MembershipFilter{}, err
	}
	activeURF, err := guard.ActiveState(ctx, guard.States().UserRoleFarm)
	if err != nil {
		return farm.MembershipFilter{}, err
	}
	roleIDs, err := guard.UserRoleIDs(ctx, userID)
	if err != nil {
		return farm.MembershipFilter{}, err
	}
	return farm.MembershipFilter{
		UserRoleIDs:         roleIDs,
		FarmStateID:         activeFarm,
		UserRoleFarmStateID: activeURF,
	}, nil
}
