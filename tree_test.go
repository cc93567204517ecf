package patricia

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree_SingleNode(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/abc", "root"))
	assert.Equal(t, "root", *tree.root.payload)
}

func TestTree_SharedRoot(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/a", "a"))
	assert.NoError(t, tree.Insert("/bc", "bc"))

	// /    (:root)
	// +-bc (:bc)
	// \-a  (:a)
	assert.Len(t, tree.root.children, 2)
	assert.Equal(t, "bc", tree.root.children[0].key)
	assert.Equal(t, "bc", *tree.root.children[0].payload)
	assert.Equal(t, "a", tree.root.children[1].key)
	assert.Equal(t, "a", *tree.root.children[1].payload)
}

func TestTree_SharedParent(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/abc", "abc"))
	assert.NoError(t, tree.Insert("/axyz", "axyz"))

	// /       (:root)
	// +-a
	//   +-xyz (:axyz)
	//   \-bc  (:abc)
	assert.Len(t, tree.root.children, 1)
	assert.Equal(t, "a", tree.root.children[0].key)
	assert.Len(t, tree.root.children[0].children, 2)
	assert.Equal(t, "xyz", tree.root.children[0].children[0].key)
	assert.Equal(t, "bc", tree.root.children[0].children[1].key)
}

func TestTree_MultipleParentNodes(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/admin/users", "users"))
	assert.NoError(t, tree.Insert("/admin/products", "products"))
	assert.NoError(t, tree.Insert("/blog/tags", "tags"))
	assert.NoError(t, tree.Insert("/blog/articles", "articles"))

	assert.Len(t, tree.root.children, 2)
	assert.Equal(t, "admin/", tree.root.children[0].key)
	assert.Nil(t, tree.root.children[0].payload)
	assert.Equal(t, "products", tree.root.children[0].children[0].key)
	assert.Equal(t, "users", tree.root.children[0].children[1].key)

	assert.Equal(t, "blog/", tree.root.children[1].key)
	assert.Equal(t, "articles", tree.root.children[1].children[0].key)
	assert.Equal(t, "articles", *tree.root.children[1].children[0].payload)
	assert.Equal(t, "tags", tree.root.children[1].children[1].key)
}

func TestTree_MixedParentsOutOfOrder(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/user/repos", "my_repos"))
	assert.NoError(t, tree.Insert("/users/:user/repos", "user_repos"))
	assert.NoError(t, tree.Insert("/users/:user", ":user"))
	assert.NoError(t, tree.Insert("/user", "me"))

	assert.Equal(t, "/user", tree.root.key)
	assert.Equal(t, "me", *tree.root.payload)
	assert.Len(t, tree.root.children, 2)
	assert.Equal(t, "/repos", tree.root.children[0].key)
	assert.Equal(t, "s/:user", tree.root.children[1].key)
	assert.Equal(t, ":user", *tree.root.children[1].payload)
	assert.Equal(t, "/repos", tree.root.children[1].children[0].key)
}

func TestTree_Unicode_SharedParent(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/かきく", "kakiku"))
	assert.NoError(t, tree.Insert("/あいうえお", "aiueo"))

	assert.Len(t, tree.root.children, 2)
	assert.Equal(t, "あいうえお", tree.root.children[0].key)
	assert.Equal(t, "かきく", tree.root.children[1].key)
}

func TestTree_Unicode_PartialPrefix(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/あいう", "aiu"))
	assert.NoError(t, tree.Insert("/あいかきくけこ", "aikakikukeko"))

	assert.Len(t, tree.root.children, 1)
	assert.Equal(t, "あい", tree.root.children[0].key)
	assert.Len(t, tree.root.children[0].children, 2)
	assert.Equal(t, "かきくけこ", tree.root.children[0].children[0].key)
	assert.Equal(t, "う", tree.root.children[0].children[1].key)
}

func TestTree_NamedAndCatchAllShape(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/*filepath", "all"))
	assert.NoError(t, tree.Insert("/products", "products"))
	assert.NoError(t, tree.Insert("/products/:id", "product"))
	assert.NoError(t, tree.Insert("/products/:id/edit", "edit"))
	assert.NoError(t, tree.Insert("/products/featured", "featured"))

	assert.Len(t, tree.root.children, 2)
	assert.Equal(t, "products", tree.root.children[0].key)
	assert.Equal(t, "/", tree.root.children[0].children[0].key)

	nodes := tree.root.children[0].children[0].children
	assert.Len(t, nodes, 2)
	assert.Equal(t, "featured", nodes[0].key)
	assert.Equal(t, ":id", nodes[1].key)
	assert.Equal(t, "/edit", nodes[1].children[0].key)

	assert.Equal(t, "*filepath", tree.root.children[1].key)
}

func TestTree_DuplicateRegistration(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/about", "about"))
	err := tree.Insert("/about", "about-again")

	var dup *DuplicateRegistrationError
	assert.ErrorAs(t, err, &dup)
	assert.True(t, errors.Is(err, ErrDuplicateRegistration))
}

func TestTree_AmbiguousNamedParameter(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/user/:name", "name"))
	err := tree.Insert("/user/:id", "id")

	var ambiguous *AmbiguousNamedParameterError
	assert.ErrorAs(t, err, &ambiguous)
	assert.True(t, errors.Is(err, ErrAmbiguousNamedParameter))
}

func TestTree_SingleNodeLookup(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/about", "about"))
	assert.Equal(t, "/about", tree.Lookup("/about").Key())
	assert.Equal(t, "", tree.Lookup("/products").Key())
}

func TestTree_KeyAndPayloadMatches(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/about", "about"))
	result := tree.Lookup("/about")
	assert.Equal(t, "/about", result.Key())
	assert.Equal(t, "about", *result.Payload())
}

func TestTree_MatchingAcrossSeparator(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/products", "products"))
	assert.NoError(t, tree.Insert("/product/new", "product_new"))

	result := tree.Lookup("/products")
	assert.Equal(t, "/products", result.Key())
	assert.Equal(t, "products", *result.Payload())
}

func TestTree_TrailingSlashTolerance(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/admin/users", "users"))
	assert.NoError(t, tree.Insert("/admin/products", "products"))
	assert.NoError(t, tree.Insert("/blog/tags", "tags"))
	assert.NoError(t, tree.Insert("/blog/articles", "articles"))

	result := tree.Lookup("/blog/tags/")
	assert.Equal(t, "/blog/tags", result.Key())
	assert.Equal(t, "tags", *result.Payload())
}

func TestTree_Unicode_TrailingSlash(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/あいう", "aiu"))
	assert.NoError(t, tree.Insert("/あいかきくけこ", "aikakikukeko"))

	result := tree.Lookup("/あいかきくけこ/")
	assert.Equal(t, "/あいかきくけこ", result.Key())
}

func TestTree_CatchAllInParameters(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/*filepath", "all"))
	assert.NoError(t, tree.Insert("/about", "about"))

	result := tree.Lookup("/src/file.png")
	assert.Equal(t, "all", *result.Payload())
	assert.Equal(t, "src/file.png", result.Params("filepath"))
}

func TestTree_OptionalCatchAllAfterSlash(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/search/*extra", "extra"))

	result := tree.Lookup("/search")
	assert.Equal(t, "", result.Params("extra"))
	assert.Equal(t, "extra", *result.Payload())
}

func TestTree_OptionalCatchAllByGlobbing(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/members*trailing", "members_catch_all"))

	result := tree.Lookup("/members")
	assert.Equal(t, "", result.Params("trailing"))
	assert.Equal(t, "members_catch_all", *result.Payload())
}

func TestTree_CatchAllNotFullMatch(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/serach/public/*query", "search"))

	result := tree.Lookup("/search")
	assert.Equal(t, "", result.Key())
}

func TestTree_PathSearchExhausted(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/members/*training", "members_catch_all"))

	result := tree.Lookup("/members2")
	assert.Equal(t, "", result.Key())
}

func TestTree_SpecificOverCatchAll(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/members", "members"))
	assert.NoError(t, tree.Insert("/members/*training", "members_catch_all"))

	result := tree.Lookup("/members")
	assert.Equal(t, "/members", result.Key())
}

func TestTree_CatchAllOverPartiallySharedKey(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/orders/*anything", "orders_catch_all"))
	assert.NoError(t, tree.Insert("/orders/closed", "closed_orders"))

	result := tree.Lookup("/orders/cancelled")
	assert.Equal(t, "/orders/*anything", result.Key())
	assert.Equal(t, "cancelled", result.Params("anything"))
}

func TestTree_NamedParameters(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/products", "products"))
	assert.NoError(t, tree.Insert("/products/:id", "product"))
	assert.NoError(t, tree.Insert("/products/:id/edit", "edit"))

	result := tree.Lookup("/products/10")
	assert.Equal(t, "/products/:id", result.Key())
	assert.Equal(t, "product", *result.Payload())
}

func TestTree_NoPartialMatching(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/products", "products"))
	assert.NoError(t, tree.Insert("/products/:id/edit", "edit"))

	result := tree.Lookup("/products/10")
	assert.Nil(t, result.Payload())
}

func TestTree_NamedParametersInResult(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/products", "products"))
	assert.NoError(t, tree.Insert("/products/:id", "product"))
	assert.NoError(t, tree.Insert("/products/:id/edit", "edit"))

	result := tree.Lookup("/products/10/edit")
	assert.Equal(t, "10", result.Params("id"))
}

func TestTree_UnicodeParameterName(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/one/:あいう", "one"))

	result := tree.Lookup("/one/10")
	assert.Equal(t, "/one/:あいう", result.Key())
	assert.Equal(t, "10", result.Params("あいう"))
}

func TestTree_LiteralOverNamedParameter(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/tag-edit/:tag", "root"))
	assert.NoError(t, tree.Insert("/tag-edit2", "products"))

	result := tree.Lookup("/tag-edit2")
	assert.Equal(t, "/tag-edit2", result.Key())
}

func TestTree_NamedOverPartiallySharedKey(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/orders/:id", "specific_order"))
	assert.NoError(t, tree.Insert("/orders/closed", "closed_orders"))

	result := tree.Lookup("/orders/10")
	assert.Equal(t, "/orders/:id", result.Key())
	assert.Equal(t, "10", result.Params("id"))
}

func TestTree_MultipleNamedParameters(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/:section/:page", "static_page"))

	result := tree.Lookup("/about/shipping")
	assert.Equal(t, "about", result.Params("section"))
	assert.Equal(t, "shipping", result.Params("page"))

	result = tree.Lookup("/:section/:page")
	assert.Equal(t, "/:section/:page", result.Key())
	assert.Equal(t, "static_page", *result.Payload())
}

func TestTree_CatchAllAndNamedParametersTogether(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))
	assert.NoError(t, tree.Insert("/*filepath", "all"))
	assert.NoError(t, tree.Insert("/products", "products"))
	assert.NoError(t, tree.Insert("/products/:id", "product"))
	assert.NoError(t, tree.Insert("/products/:id/edit", "edit"))
	assert.NoError(t, tree.Insert("/products/featured", "featured"))

	result := tree.Lookup("/products/1000")
	assert.Equal(t, "/products/:id", result.Key())
	assert.Equal(t, "product", *result.Payload())

	result = tree.Lookup("/admin/articles")
	assert.Equal(t, "/*filepath", result.Key())
	assert.Equal(t, "admin/articles", result.Params("filepath"))

	result = tree.Lookup("/products/featured")
	assert.Equal(t, "/products/featured", result.Key())
	assert.Equal(t, "featured", *result.Payload())
}

func TestTree_NamedParametersAndPartiallySharedKey(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/one/:id", "one"))
	assert.NoError(t, tree.Insert("/one-longer/:id", "two"))

	result := tree.Lookup("/one-longer/10")
	assert.Equal(t, "/one-longer/:id", result.Key())
	assert.Equal(t, "10", result.Params("id"))
}

func TestTree_EmptyTreeAlwaysEmptyLookup(t *testing.T) {
	tree := New[string]()
	result := tree.Lookup("/anything")
	assert.Nil(t, result.Payload())
	assert.Equal(t, "", result.Key())
}

func TestTree_RootOnlyMatchesExactSlash(t *testing.T) {
	tree := New[string]()
	assert.NoError(t, tree.Insert("/", "root"))

	assert.Equal(t, "root", *tree.Lookup("/").Payload())
	assert.Nil(t, tree.Lookup("/x").Payload())
}

func TestTree_InsertionOrderIndependence(t *testing.T) {
	registrations := []struct{ pattern, payload string }{
		{"/about", "about"},
		{"/*filepath", "all"},
		{"/products", "products"},
		{"/products/:id", "product"},
		{"/products/:id/edit", "edit"},
		{"/products/featured", "featured"},
	}

	build := func(order []int) *Tree[string] {
		tree := New[string]()
		for _, i := range order {
			r := registrations[i]
			if err := tree.Insert(r.pattern, r.payload); err != nil {
				t.Fatalf("insert %q: %v", r.pattern, err)
			}
		}
		return tree
	}

	forward := build([]int{0, 1, 2, 3, 4, 5})
	reverse := build([]int{5, 4, 3, 2, 1, 0})

	for _, path := range []string{"/about", "/src/file.png", "/products", "/products/10", "/products/10/edit", "/products/featured"} {
		assert.Equal(t, forward.Lookup(path).Key(), reverse.Lookup(path).Key(), "path %q", path)
	}
}
