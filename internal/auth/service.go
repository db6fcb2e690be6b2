package auth

import (
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/widget"
)

// Service provides authentication and authorization functionality.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// HasPermission checks if the role of a user has a specific permission.
func (s *Service) HasPermission(userID uint64, permission string) (bool, error) {
	var count int64

	err := s.db.Table("permissions").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN users ON users.role_id = role_permissions.role_id").
		Where("users.id = ? AND users.active = ? AND permissions.name = ?", userID, true, permission).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role permission: %w", err)
	}

	return count > 0, nil
}

// HasAnyPermission checks if a user has at least one of the given permissions.
func (s *Service) HasAnyPermission(userID uint64, permissions []string) (bool, error) {
	if len(permissions) == 0 {
		return false, nil
	}

	granted, err := s.GetUserPermissions(userID)
	if err != nil {
		return false, err
	}

	for _, perm := range permissions {
		if slices.Contains(granted, perm) {
			return true, nil
		}
	}

	return false, nil
}

// GetUserPermissions retrieves the permissions of the role of a user, sorted.
func (s *Service) GetUserPermissions(userID uint64) ([]string, error) {
	var permissions []string

	err := s.db.Table("permissions").
		Select("DISTINCT permissions.name").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN users ON users.role_id = role_permissions.role_id").
		Where("users.id = ? AND users.active = ?", userID, true).
		Order("permissions.name").
		Pluck("permissions.name", &permissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user permissions: %w", err)
	}

	return permissions, nil
}

// AssignRoleToUser assigns a role to a user.
func (s *Service) AssignRoleToUser(userID uint64, roleID uint) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role_id", roleID).Error
}

// RoleByName returns a role.
func (s *Service) RoleByName(name string) (*models.Role, error) {
	var role models.Role

	err := s.db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query role: %w", err)
	}

	return &role, nil
}

// SeedRoles creates the permissions and system roles that are missing and
// grants each role its permissions. It is safe to run on every start.
func (s *Service) SeedRoles() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		byName := make(map[string]uint)

		for _, def := range Definitions() {
			perm := models.Permission{
				Name:        def.Name,
				Resource:    def.Resource,
				Action:      def.Action,
				Description: def.Description,
			}

			if err := tx.Where("name = ?", def.Name).FirstOrCreate(&perm).Error; err != nil {
				return fmt.Errorf("failed to seed permission %s: %w", def.Name, err)
			}

			byName[def.Name] = perm.ID
		}

		for roleName, perms := range RolePermissions() {
			role := models.Role{Name: roleName, IsSystem: true}
			if err := tx.Where("name = ?", roleName).FirstOrCreate(&role).Error; err != nil {
				return fmt.Errorf("failed to seed role %s: %w", roleName, err)
			}

			for _, perm := range perms {
				err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&models.RolePermission{RoleID: role.ID, PermissionID: byName[perm]}).Error
				if err != nil {
					return fmt.Errorf("failed to grant %s to %s: %w", perm, roleName, err)
				}
			}
		}

		return nil
	})
}

// Actor is a user acting in the admin area.
type Actor struct {
	UserID      uint64
	Permissions []string
}

var _ widget.Actor = (*Actor)(nil)

// Can reports whether the actor holds capability.
func (a *Actor) Can(capability string) bool {
	if a == nil {
		return false
	}

	return slices.Contains(a.Permissions, capability)
}

// Actor loads the permissions of a user.
func (s *Service) Actor(userID uint64) (*Actor, error) {
	perms, err := s.GetUserPermissions(userID)
	if err != nil {
		return nil, err
	}

	return &Actor{UserID: userID, Permissions: perms}, nil
}
