package repositories

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
	"clubcentral/pkg/utils"
)

type MemberRepository interface {
	ListAll(ctx context.Context) ([]db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	Add(ctx context.Context, member *db_models.Member) (string, error)
	Update(ctx context.Context, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type memberRepository struct {
	store DocumentStore
}

func NewMemberRepository(store DocumentStore) MemberRepository {
	return &memberRepository{store: store}
}

func (r *memberRepository) ListAll(ctx context.Context) ([]db_models.Member, error) {
	members := []db_models.Member{}
	if err := r.store.List(ctx, ColMembers, "joinDate", SortDesc, 0, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// FindByEmail returns nil without error when no member matches, so role
// resolution can treat "not a member" as an ordinary outcome.
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.store.FindOne(ctx, ColMembers, bson.M{"email": strings.ToLower(email)}, &member)
	if err != nil {
		if err == utils.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Add(ctx context.Context, member *db_models.Member) (string, error) {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	member.Email = strings.ToLower(member.Email)
	return r.store.Insert(ctx, ColMembers, member)
}

func (r *memberRepository) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	if email, ok := partial["email"].(string); ok {
		partial["email"] = strings.ToLower(email)
	}
	return r.store.Update(ctx, ColMembers, id, bson.M(partial))
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColMembers, id)
}
