package scenarios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-pitfall/automap"
	"enum-pitfall/store"
	"enum-pitfall/warehouse"
)

// The two OrderStatus enums declare the same member names in a different
// order. A by-name map must carry every member to its namesake, no matter
// what the underlying values are.
func TestByNameMapsEveryMemberDespiteReordering(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())
	require.NoError(t, cfg.Validate())

	m := cfg.Mapper()

	want := map[store.OrderStatus]warehouse.OrderStatus{
		store.StatusPending:   warehouse.StatusPending,
		store.StatusPaid:      warehouse.StatusPaid,
		store.StatusShipped:   warehouse.StatusShipped,
		store.StatusCancelled: warehouse.StatusCancelled,
	}

	for src, dst := range want {
		var got warehouse.OrderStatus
		require.NoError(t, m.Map(&got, src))
		assert.Equal(t, dst, got)
		assert.Equal(t, src.String(), got.String(), "the member kept its meaning")
		assert.NotEqual(t, int(src), int(got), "while the underlying value changed")
	}
}

// Mapping the order records infers an OrderStatus pairing that nobody
// declared. The validator hook turns that silence into a configuration
// error with the fix spelled out.
func TestMissingEnumMapFailsValidation(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.Order{}, warehouse.Order{})
	cfg.AddValidator(automap.RequireExplicitEnumMaps)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.OrderStatus -> warehouse.OrderStatus")
	assert.Contains(t, err.Error(),
		"cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())",
		"the error message is the fix")
}

// store.PaymentMethod has a member the warehouse never heard of. With
// by-name mapping declared, validation names it instead of letting it
// leak through as a number.
func TestByNameReportsMembersMissingFromDestination(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.PaymentMethod(0), warehouse.PaymentMethod(0), automap.ByName())

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MethodCrypto")
}

// The default configuration: no enum map at all. Validation finds nothing
// wrong, and the mapped data is quietly nonsense.
func TestDefaultValueMappingIsSilentlyWrong(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.Order{}, warehouse.Order{})
	require.NoError(t, cfg.Validate(), "nothing complains up front")

	src := store.Order{
		Number:  "A-1001",
		Status:  store.StatusPending,
		History: []store.OrderStatus{store.StatusPending, store.StatusPaid},
	}

	var got warehouse.Order
	require.NoError(t, cfg.Mapper().Map(&got, src))

	// Same underlying value, entirely different meaning: a pending order
	// arrives at the warehouse marked as shipped.
	assert.Equal(t, warehouse.StatusShipped, got.Status)
	assert.Equal(t, "StatusShipped", got.Status.String())
	assert.Equal(t,
		[]warehouse.OrderStatus{warehouse.StatusShipped, warehouse.StatusCancelled},
		got.History)
}

// When the source value has no counterpart at the same position, the raw
// number just travels along and the destination holds a member that does
// not exist.
func TestValueMappingFallsBackToRawNumber(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.Payment{}, warehouse.Payment{})
	require.NoError(t, cfg.Validate())

	var got warehouse.Payment
	err := cfg.Mapper().Map(&got, store.Payment{Reference: "P-1", Method: store.MethodCrypto})
	require.NoError(t, err)

	assert.Equal(t, warehouse.PaymentMethod(3), got.Method)
	assert.Equal(t, "PaymentMethod(3)", got.Method.String(), "not a member at all")
}

// The remediation the README lands on: keep by-name mode and pin the
// divergent member to a reviewed destination.
func TestMemberOverrideResolvesDivergence(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.PaymentMethod(0), warehouse.PaymentMethod(0),
		automap.ByName(),
		automap.WithMemberOverride("MethodCrypto", "MethodWire"))
	require.NoError(t, cfg.Validate())

	got, err := automap.MapTo[warehouse.PaymentMethod](cfg.Mapper(), store.MethodCrypto)
	require.NoError(t, err)
	assert.Equal(t, warehouse.MethodWire, got)
}
