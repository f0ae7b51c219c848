package models

// Author — автор постов, userName уникален.
type Author struct {
	ID        string `json:"id"        bson:"-"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName"  bson:"lastName"`
	UserName  string `json:"userName"  bson:"userName"`
}

// DisplayName — "firstName lastName" без обрезки, как в списке авторов.
func (a *Author) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

func (a *Author) Response() AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.DisplayName(), UserName: a.UserName}
}

type AuthorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// nil-поле означает, что ключа не было в теле запроса.
// swagger:model CreateAuthorRequest
type CreateAuthorRequest struct {
	FirstName *string `json:"firstName" example:"Ada"`
	LastName  *string `json:"lastName"  example:"Lovelace"`
	UserName  *string `json:"userName"  example:"ada"`
}

// swagger:model UpdateAuthorRequest
type UpdateAuthorRequest struct {
	ID        *string `json:"id"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	UserName  *string `json:"userName,omitempty"`
}

// AuthorPatch — частичное обновление, пишутся только не-nil поля.
type AuthorPatch struct {
	FirstName *string
	LastName  *string
	UserName  *string
}

func (p AuthorPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.UserName == nil
}

// Apply применяет патч к копии автора.
func (p AuthorPatch) Apply(a Author) Author {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.UserName != nil {
		a.UserName = *p.UserName
	}
	return a
}
