package fingerprint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

func TestGenerateNodeID(t *testing.T) {
	n := leaf(domain.RoleButton, domain.BBox01{0.4, 0.52, 0.2, 0.05})

	id := GenerateNodeID(&n, "parent")
	h := HashNodeShallow(&n, domain.DefaultHashOptions())

	// The 8-character shallow hash is shorter than the 12-character
	// cap, so it enters the ID whole.
	assert.Equal(t, fmt.Sprintf("parent/%s_40_52", h), id)
}

func TestGenerateNodeID_ContentAddressed(t *testing.T) {
	a := leaf(domain.RoleButton, domain.BBox01{0.4, 0.52, 0.2, 0.05})
	b := leaf(domain.RoleButton, domain.BBox01{0.4, 0.52, 0.2, 0.05})
	assert.Equal(t, GenerateNodeID(&a, "p"), GenerateNodeID(&b, "p"))

	c := leaf(domain.RoleLink, domain.BBox01{0.4, 0.52, 0.2, 0.05})
	assert.NotEqual(t, GenerateNodeID(&a, "p"), GenerateNodeID(&c, "p"))
}

func TestAssignNodeIDs(t *testing.T) {
	root := leaf(domain.RolePage, domain.BBox01{0, 0, 1, 1})
	form := leaf(domain.RoleForm, domain.BBox01{0.3, 0.3, 0.4, 0.3})
	form.Children = []domain.Node{
		leaf(domain.RoleInput, domain.BBox01{0.3, 0.35, 0.4, 0.05}),
		leaf(domain.RoleButton, domain.BBox01{0.4, 0.5, 0.2, 0.05}),
	}
	root.Children = []domain.Node{form}

	AssignNodeIDs(&root)

	require.NotEmpty(t, root.ID)
	assert.True(t, strings.HasPrefix(root.ID, "/"))

	gotForm := root.Children[0]
	assert.True(t, strings.HasPrefix(gotForm.ID, root.ID+"/"),
		"child ID %q should extend parent ID %q", gotForm.ID, root.ID)

	for _, child := range gotForm.Children {
		assert.True(t, strings.HasPrefix(child.ID, gotForm.ID+"/"))
	}

	assert.NotEqual(t, gotForm.Children[0].ID, gotForm.Children[1].ID)
}

func TestAssignNodeIDs_Deterministic(t *testing.T) {
	build := func() domain.Node {
		root := leaf(domain.RolePage, domain.BBox01{0, 0, 1, 1})
		root.Children = []domain.Node{
			leaf(domain.RoleHeader, domain.BBox01{0, 0, 1, 0.1}),
			leaf(domain.RoleFooter, domain.BBox01{0, 0.9, 1, 0.1}),
		}
		return root
	}

	a := build()
	b := build()
	AssignNodeIDs(&a)
	AssignNodeIDs(&b)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Children[0].ID, b.Children[0].ID)
	assert.Equal(t, a.Children[1].ID, b.Children[1].ID)
}
