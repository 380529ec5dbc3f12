package service

import (
	"context"

	"inkwell/internal/models"
)

type friendRepoStub struct {
	createRequestFn      func(context.Context, uint, uint) (bool, error)
	acceptRequestFn      func(context.Context, uint, uint) (bool, error)
	deleteRequestFn      func(context.Context, uint, uint) (bool, error)
	getBetweenFn         func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn         func(context.Context, uint) ([]models.User, error)
	getPendingRequestsFn func(context.Context, uint) ([]models.Friendship, error)
	getSentRequestsFn    func(context.Context, uint) ([]models.Friendship, error)
	removeEdgeFn         func(context.Context, uint, uint) (bool, error)
}

func (s *friendRepoStub) CreateRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	return s.createRequestFn(ctx, requesterID, addresseeID)
}
func (s *friendRepoStub) AcceptRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	return s.acceptRequestFn(ctx, requesterID, addresseeID)
}
func (s *friendRepoStub) DeleteRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	return s.deleteRequestFn(ctx, requesterID, addresseeID)
}
func (s *friendRepoStub) GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getBetweenFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getSentRequestsFn(ctx, userID)
}
func (s *friendRepoStub) RemoveEdge(ctx context.Context, userID1, userID2 uint) (bool, error) {
	return s.removeEdgeFn(ctx, userID1, userID2)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createRequestFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		acceptRequestFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		deleteRequestFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		getBetweenFn:         func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:         func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getPendingRequestsFn: func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		getSentRequestsFn:    func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		removeEdgeFn:         func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
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
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	getOwnedFn      func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn   func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listFn          func(context.Context, int, int, uint) ([]*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	deleteCascadeFn func(context.Context, uint) error
	toggleLikeFn    func(context.Context, uint, uint) (bool, error)
	countLikesFn    func(context.Context, uint) (int64, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetOwned(ctx context.Context, id, userID uint) (*models.Post, error) {
	return s.getOwnedFn(ctx, id, userID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *postRepoStub) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.toggleLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	return s.countByAuthorFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(context.Context, *models.Post) error { return nil },
		getByIDFn:       func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		getOwnedFn:      func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn:   func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		listFn:          func(context.Context, int, int, uint) ([]*models.Post, error) { return nil, nil },
		updateFn:        func(context.Context, *models.Post) error { return nil },
		deleteCascadeFn: func(context.Context, uint) error { return nil },
		toggleLikeFn:    func(context.Context, uint, uint) (bool, error) { return true, nil },
		countLikesFn:    func(context.Context, uint) (int64, error) { return 0, nil },
		countByAuthorFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(context.Context, *models.Comment) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:  func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
