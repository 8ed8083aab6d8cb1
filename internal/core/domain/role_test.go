package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	valid := []Role{
		RolePage, RoleNav, RoleHeader, RoleFooter, RoleSection, RoleCard,
		RoleList, RoleTable, RoleModal, RoleToast, RoleDropdown, RoleForm,
		RoleInput, RoleButton, RoleLink, RoleCheckbox, RoleRadio, RoleIcon,
		RoleImage, RoleText, RolePagination, RoleUnknown,
	}
	for _, r := range valid {
		assert.True(t, r.IsValid(), "role %s", r)
	}

	invalid := []Role{"", "page", "WIDGET", "BUTTON "}
	for _, r := range invalid {
		assert.False(t, r.IsValid(), "role %q", r)
	}
}

func TestRole_IsContainer(t *testing.T) {
	assert.True(t, RolePage.IsContainer())
	assert.True(t, RoleModal.IsContainer())
	assert.True(t, RoleForm.IsContainer())
	assert.False(t, RoleButton.IsContainer())
	assert.False(t, RoleText.IsContainer())
	assert.False(t, RoleUnknown.IsContainer())
}

func TestTextKind_IsValid(t *testing.T) {
	for _, k := range []TextKind{TextKindNone, TextKindShort, TextKindSentence, TextKindParagraph, TextKindMixed} {
		assert.True(t, k.IsValid(), "kind %s", k)
	}
	assert.False(t, TextKind("word").IsValid())
}
