package service

import (
	"context"

	"critiq/internal/models"
)

type ticketRepoStub struct {
	createFn        func(context.Context, *models.Ticket) error
	getByIDFn       func(context.Context, uint) (*models.Ticket, error)
	getOwnedFn      func(context.Context, uint, uint) (*models.Ticket, error)
	updateFn        func(context.Context, *models.Ticket) error
	deleteFn        func(context.Context, uint) error
	listByUserFn    func(context.Context, uint) ([]models.Ticket, error)
	listByAuthorsFn func(context.Context, []uint) ([]models.Ticket, error)
}

func (s *ticketRepoStub) Create(ctx context.Context, ticket *models.Ticket) error {
	return s.createFn(ctx, ticket)
}
func (s *ticketRepoStub) GetByID(ctx context.Context, id uint) (*models.Ticket, error) {
	return s.getByIDFn(ctx, id)
}
func (s *ticketRepoStub) GetOwned(ctx context.Context, id, userID uint) (*models.Ticket, error) {
	return s.getOwnedFn(ctx, id, userID)
}
func (s *ticketRepoStub) Update(ctx context.Context, ticket *models.Ticket) error {
	return s.updateFn(ctx, ticket)
}
func (s *ticketRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *ticketRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Ticket, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *ticketRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Ticket, error) {
	return s.listByAuthorsFn(ctx, authorIDs)
}

func noopTicketRepo() *ticketRepoStub {
	return &ticketRepoStub{
		createFn:        func(context.Context, *models.Ticket) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.Ticket, error) { return &models.Ticket{}, nil },
		getOwnedFn:      func(context.Context, uint, uint) (*models.Ticket, error) { return &models.Ticket{}, nil },
		updateFn:        func(context.Context, *models.Ticket) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listByUserFn:    func(context.Context, uint) ([]models.Ticket, error) { return nil, nil },
		listByAuthorsFn: func(context.Context, []uint) ([]models.Ticket, error) { return nil, nil },
	}
}

type reviewRepoStub struct {
	createFn                 func(context.Context, *models.Review) error
	getByIDFn                func(context.Context, uint) (*models.Review, error)
	getOwnedFn               func(context.Context, uint, uint) (*models.Review, error)
	updateFn                 func(context.Context, *models.Review) error
	deleteFn                 func(context.Context, uint) error
	listByUserFn             func(context.Context, uint) ([]models.Review, error)
	listForFluxFn            func(context.Context, []uint, uint) ([]models.Review, error)
	existsForTicketAndUserFn func(context.Context, uint, uint) (bool, error)
	reviewedTicketIDsFn      func(context.Context, uint, []uint) (map[uint]bool, error)
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) GetOwned(ctx context.Context, id, userID uint) (*models.Review, error) {
	return s.getOwnedFn(ctx, id, userID)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *reviewRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *reviewRepoStub) ListForFlux(ctx context.Context, authorIDs []uint, viewerID uint) ([]models.Review, error) {
	return s.listForFluxFn(ctx, authorIDs, viewerID)
}
func (s *reviewRepoStub) ExistsForTicketAndUser(ctx context.Context, ticketID, userID uint) (bool, error) {
	return s.existsForTicketAndUserFn(ctx, ticketID, userID)
}
func (s *reviewRepoStub) ReviewedTicketIDs(ctx context.Context, userID uint, ticketIDs []uint) (map[uint]bool, error) {
	return s.reviewedTicketIDsFn(ctx, userID, ticketIDs)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:                 func(context.Context, *models.Review) error { return nil },
		getByIDFn:                func(context.Context, uint) (*models.Review, error) { return &models.Review{}, nil },
		getOwnedFn:               func(context.Context, uint, uint) (*models.Review, error) { return &models.Review{}, nil },
		updateFn:                 func(context.Context, *models.Review) error { return nil },
		deleteFn:                 func(context.Context, uint) error { return nil },
		listByUserFn:             func(context.Context, uint) ([]models.Review, error) { return nil, nil },
		listForFluxFn:            func(context.Context, []uint, uint) ([]models.Review, error) { return nil, nil },
		existsForTicketAndUserFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		reviewedTicketIDsFn:      func(context.Context, uint, []uint) (map[uint]bool, error) { return map[uint]bool{}, nil },
	}
}

type followRepoStub struct {
	createFn      func(context.Context, *models.UserFollow) error
	deleteFn      func(context.Context, uint, uint) (bool, error)
	existsFn      func(context.Context, uint, uint) (bool, error)
	followingFn   func(context.Context, uint) ([]models.UserFollow, error)
	followersFn   func(context.Context, uint) ([]models.UserFollow, error)
	followedIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.UserFollow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.UserFollow, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.UserFollow, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) FollowedIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followedIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:      func(context.Context, *models.UserFollow) error { return nil },
		deleteFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		existsFn:      func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingFn:   func(context.Context, uint) ([]models.UserFollow, error) { return nil, nil },
		followersFn:   func(context.Context, uint) ([]models.UserFollow, error) { return nil, nil },
		followedIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}
