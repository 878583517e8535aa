package community

import (
	"context"
	"fmt"
	"time"

	"devsa-hub/backend/internal/domain/access"
	"devsa-hub/backend/internal/utils"
)

type Service struct {
	repo  *Repo
	seeds []Community
}

// NewService wires the repo plus the static seed roster served while the
// store is still in legacy static mode.
func NewService(repo *Repo, seeds []Community) *Service {
	return &Service{repo: repo, seeds: seeds}
}

// List lists all communities. Readable by every role. In legacy static mode
// the hard-coded seed roster is served instead of Firestore.
func (s *Service) List(ctx context.Context) ([]Community, error) {
	mode, err := s.repo.StoreMode(ctx)
	if err != nil {
		return nil, err
	}
	if mode == StoreModeStatic {
		return append([]Community{}, s.seeds...), nil
	}
	return s.repo.List(ctx)
}

// Get retrieves a community by ID.
func (s *Service) Get(ctx context.Context, communityID string) (*Community, error) {
	if communityID == "" {
		return nil, fmt.Errorf("%w: communityId is required", ErrBadRequest)
	}

	mode, err := s.repo.StoreMode(ctx)
	if err != nil {
		return nil, err
	}
	if mode == StoreModeStatic {
		for _, c := range s.seeds {
			if c.ID == communityID {
				return &c, nil
			}
		}
		return nil, fmt.Errorf("%w: community not found", ErrNotFound)
	}
	return s.repo.Get(ctx, communityID)
}

// NamesByID returns an id -> display name map for host resolution.
func (s *Service) NamesByID(ctx context.Context) (map[string]string, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, c := range all {
		names[c.ID] = c.Name
	}
	return names, nil
}

// Create creates a community. Admin only, and only once the store has been
// migrated out of its legacy static mode. A duplicate ID collides.
func (s *Service) Create(ctx context.Context, actor access.Actor, in CreateCommunityInput) (*Community, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}

	mode, err := s.repo.StoreMode(ctx)
	if err != nil {
		return nil, err
	}
	if mode != StoreModeFirestore {
		return nil, fmt.Errorf("%w: run the community migration first", ErrStoreReadOnly)
	}

	id := in.ID
	if id == "" {
		id = utils.Slugify(in.Name)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: could not derive a community id", ErrBadRequest)
	}

	target := access.Target{CommunityIDs: []string{id}, StoreMutable: true}
	if !access.CanWrite(actor, access.ResourceCommunities, access.ActionCreate, target) {
		return nil, fmt.Errorf("%w: only admins can create communities", ErrUnauthorized)
	}

	now := time.Now().UTC()
	c := Community{
		ID:          id,
		Name:        in.Name,
		Logo:        in.Logo,
		Description: in.Description,
		Links:       in.Links,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, c)
}

// Update edits a community. Admins may edit any; an organizer only its own.
func (s *Service) Update(ctx context.Context, actor access.Actor, communityID string, in UpdateCommunityInput) (*Community, error) {
	if communityID == "" {
		return nil, fmt.Errorf("%w: communityId is required", ErrBadRequest)
	}

	mode, err := s.repo.StoreMode(ctx)
	if err != nil {
		return nil, err
	}
	if mode != StoreModeFirestore {
		return nil, fmt.Errorf("%w: run the community migration first", ErrStoreReadOnly)
	}

	existing, err := s.repo.Get(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if existing.IsStatic {
		return nil, fmt.Errorf("%w: static communities must be edited in source data", ErrStatic)
	}

	target := access.Target{CommunityIDs: []string{communityID}, StoreMutable: true}
	if !access.CanWrite(actor, access.ResourceCommunities, access.ActionUpdate, target) {
		return nil, fmt.Errorf("%w: not allowed to edit this community", ErrUnauthorized)
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		updates["name"] = *in.Name
	}
	if in.Logo != nil {
		updates["logo"] = *in.Logo
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Links != nil {
		updates["links"] = *in.Links
	}

	return s.repo.Update(ctx, communityID, updates)
}

// Delete removes a community. Admin only.
func (s *Service) Delete(ctx context.Context, actor access.Actor, communityID string) error {
	if communityID == "" {
		return fmt.Errorf("%w: communityId is required", ErrBadRequest)
	}

	mode, err := s.repo.StoreMode(ctx)
	if err != nil {
		return err
	}
	if mode != StoreModeFirestore {
		return fmt.Errorf("%w: run the community migration first", ErrStoreReadOnly)
	}

	existing, err := s.repo.Get(ctx, communityID)
	if err != nil {
		return err
	}
	if existing.IsStatic {
		return fmt.Errorf("%w: static communities must be edited in source data", ErrStatic)
	}

	target := access.Target{CommunityIDs: []string{communityID}, StoreMutable: true}
	if !access.CanWrite(actor, access.ResourceCommunities, access.ActionDelete, target) {
		return fmt.Errorf("%w: only admins can delete communities", ErrUnauthorized)
	}

	return s.repo.Delete(ctx, communityID)
}

// StoreMode reports whether the communities collection is still in its legacy
// static mode.
func (s *Service) StoreMode(ctx context.Context) (string, error) {
	return s.repo.StoreMode(ctx)
}

// MigrateStatic promotes the hard-coded seed communities into Firestore and
// flips the store into its mutable mode. Runs once; migrated documents become
// editable, so they are written without the static flag.
func (s *Service) MigrateStatic(ctx context.Context, actor access.Actor) (int, error) {
	if !access.HasAdminAccess(actor.Role) {
		return 0, fmt.Errorf("%w: only admins can run the migration", ErrUnauthorized)
	}

	mode, err := s.repo.StoreMode(ctx)
	if err != nil {
		return 0, err
	}
	if mode == StoreModeFirestore {
		return 0, fmt.Errorf("%w: communities are already migrated", ErrBadRequest)
	}

	now := time.Now().UTC()
	migrated := 0
	for _, c := range s.seeds {
		c.IsStatic = false
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		c.UpdatedAt = now

		_, err := s.repo.Create(ctx, c)
		if IsErrAlreadyExists(err) {
			continue
		}
		if err != nil {
			return migrated, err
		}
		migrated++
	}

	if err := s.repo.SetStoreMode(ctx, StoreModeFirestore); err != nil {
		return migrated, err
	}
	return migrated, nil
}
