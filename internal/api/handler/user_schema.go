package handler

type createUserRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Surname   string `json:"surname"`
	Telephone string `json:"telephone"  validate:"omitempty,e164"`
	BirthDate string `json:"birth_date"`
	Role      string `json:"role"       validate:"required,oneof=ADMIN MANAGER USER CUSTOMER"`
}

type changeRoleRequest struct {
	NewRole string `json:"new_role" validate:"required,oneof=ADMIN MANAGER USER CUSTOMER"`
}

type updateStatusRequest struct {
	// Pointer so that an absent field fails validation instead of reading
	// as false.
	Active *bool `json:"active" validate:"required"`
}
