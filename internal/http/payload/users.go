package payload

import (
	"finledger/internal/core"
	"finledger/internal/ledger"
	"regexp"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type RegisterUserRequest struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     int    `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Min(int(ledger.RoleRegular)), validation.Max(int(ledger.RoleAdmin))),
		validation.Field(&r.Password, validation.Required.When(r.Username != "")),
	)
}

func (r RegisterUserRequest) ToMessage() core.RegisterUserMessage {
	return core.RegisterUserMessage{
		Address:  r.Address,
		Name:     r.Name,
		Email:    r.Email,
		Role:     ledger.RoleFromInt(r.Role),
		Username: r.Username,
		Password: r.Password,
	}
}

type UpdateRoleRequest struct {
	Role int `json:"role"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Min(int(ledger.RoleRegular)), validation.Max(int(ledger.RoleAdmin))),
	)
}
