package loyalty_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/domain/loyalty"
)

// Tasas del negocio: 1 punto vale 0.5 DH al canjear; se acumula el 30% del
// monto final, truncado a entero.
var (
	redemptionRate = decimal.RequireFromString("0.5")
	earnRate       = decimal.RequireFromString("0.3")
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMaxRedeemablePoints_LimitadoPorSaldo(t *testing.T) {
	// Subtotal 100 permitiría canjear hasta 200 puntos, pero el cliente
	// solo tiene 150.
	got := loyalty.MaxRedeemablePoints(150, d("100"), redemptionRate)
	assert.Equal(t, int64(150), got, "el canje nunca supera el saldo del cliente")
}

func TestMaxRedeemablePoints_LimitadoPorSubtotal(t *testing.T) {
	// Subtotal 10 → floor(10/0.5) = 20 puntos como máximo aunque el saldo
	// sea enorme.
	got := loyalty.MaxRedeemablePoints(10_000, d("10"), redemptionRate)
	assert.Equal(t, int64(20), got, "el canje se limita por el subtotal de la venta")
}

func TestMaxRedeemablePoints_TruncaHaciaAbajo(t *testing.T) {
	// floor(10.75/0.5) = floor(21.5) = 21.
	got := loyalty.MaxRedeemablePoints(10_000, d("10.75"), redemptionRate)
	assert.Equal(t, int64(21), got, "la división se trunca, nunca se redondea hacia arriba")
}

func TestMaxRedeemablePoints_EntradasDegeneradas(t *testing.T) {
	assert.Zero(t, loyalty.MaxRedeemablePoints(0, d("100"), redemptionRate), "sin saldo no hay canje")
	assert.Zero(t, loyalty.MaxRedeemablePoints(-5, d("100"), redemptionRate), "saldo negativo no produce canje")
	assert.Zero(t, loyalty.MaxRedeemablePoints(100, decimal.Zero, redemptionRate), "subtotal cero no produce canje")
	assert.Zero(t, loyalty.MaxRedeemablePoints(100, d("100"), decimal.Zero), "tasa cero no divide")
}

func TestDiscount_NuncaSuperaElSubtotal(t *testing.T) {
	// Propiedad: para cualquier saldo y subtotal, el descuento del máximo
	// canjeable cabe en el subtotal.
	saldos := []int64{0, 1, 7, 20, 150, 9999}
	subtotales := []string{"0.5", "1", "9.99", "10.75", "100", "3.30"}
	for _, balance := range saldos {
		for _, s := range subtotales {
			subtotal := d(s)
			points := loyalty.MaxRedeemablePoints(balance, subtotal, redemptionRate)
			discount := loyalty.Discount(points, redemptionRate)
			assert.True(t, discount.LessThanOrEqual(subtotal),
				"descuento %s no debe superar subtotal %s (saldo %d)", discount, subtotal, balance)
		}
	}
}

func TestDiscount_ValorMonetario(t *testing.T) {
	assert.True(t, loyalty.Discount(20, redemptionRate).Equal(d("10")), "20 puntos × 0.5 = 10 DH")
	assert.True(t, loyalty.Discount(0, redemptionRate).IsZero())
	assert.True(t, loyalty.Discount(-3, redemptionRate).IsZero(), "puntos negativos no descuentan")
}

func TestPointsEarned_TruncaHaciaAbajo(t *testing.T) {
	require.Equal(t, int64(7), loyalty.PointsEarned(d("25.5"), earnRate), "floor(25.5 × 0.3) = floor(7.65) = 7")
	require.Equal(t, int64(3), loyalty.PointsEarned(d("10"), earnRate), "floor(10 × 0.3) = 3")
	require.Equal(t, int64(0), loyalty.PointsEarned(d("3.30"), earnRate), "floor(0.99) = 0")
}

func TestPointsEarned_NuncaNegativo(t *testing.T) {
	assert.Zero(t, loyalty.PointsEarned(decimal.Zero, earnRate))
	assert.Zero(t, loyalty.PointsEarned(d("-10"), earnRate))
	assert.Zero(t, loyalty.PointsEarned(d("10"), decimal.Zero))
}
