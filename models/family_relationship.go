package models

// RelationshipType iki kişi arasındaki akrabalık türünü tanımlar.
type RelationshipType string

const (
	RelationshipParent      RelationshipType = "PARENT"
	RelationshipChild       RelationshipType = "CHILD"
	RelationshipSpouse      RelationshipType = "SPOUSE"
	RelationshipSibling     RelationshipType = "SIBLING"
	RelationshipGrandparent RelationshipType = "GRANDPARENT"
	RelationshipGrandchild  RelationshipType = "GRANDCHILD"
	RelationshipAuntUncle   RelationshipType = "AUNT_UNCLE"
	RelationshipNieceNephew RelationshipType = "NIECE_NEPHEW"
	RelationshipCousin      RelationshipType = "COUSIN"
	RelationshipOther       RelationshipType = "OTHER"
)

// ValidRelationshipType verilen değerin tanımlı bir akrabalık türü olup olmadığını söyler.
func ValidRelationshipType(t RelationshipType) bool {
	switch t {
	case RelationshipParent, RelationshipChild, RelationshipSpouse, RelationshipSibling,
		RelationshipGrandparent, RelationshipGrandchild, RelationshipAuntUncle,
		RelationshipNieceNephew, RelationshipCousin, RelationshipOther:
		return true
	}
	return false
}

// FamilyRelationship iki kişi arasındaki yönlü akrabalık kenarıdır.
// Sorgular çift yönlüdür (iki uçtan biri eşleşirse döner). Tekrarlayan veya
// simetrik kenarlar (A→B SPOUSE ve B→A SPOUSE) engellenmez.
type FamilyRelationship struct {
	BaseModel
	PersonID         uint             `gorm:"not null;index" json:"personId"`
	RelatedPersonID  uint             `gorm:"not null;index" json:"relatedPersonId"`
	RelationshipType RelationshipType `gorm:"type:varchar(20);not null" json:"relationshipType"`

	Person        *Person `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"person,omitempty"`
	RelatedPerson *Person `gorm:"foreignKey:RelatedPersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"relatedPerson,omitempty"`
}
