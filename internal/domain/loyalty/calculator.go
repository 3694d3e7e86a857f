// Package loyalty implementa el cálculo del programa de puntos (servicio de
// dominio, funciones puras). Las tasas observadas del negocio: 1 punto = 0.5 DH
// al canjear y se acumula el 30% del monto final pagado, truncado a entero.
package loyalty

import "github.com/shopspring/decimal"

// MaxRedeemablePoints devuelve el máximo de puntos canjeables en una venta:
// min(saldo del cliente, floor(subtotal / tasaCanje)). Nunca negativo y nunca
// mayor que el saldo, de modo que el descuento jamás supera el subtotal.
func MaxRedeemablePoints(balance int64, subtotal, redemptionRate decimal.Decimal) int64 {
	if balance <= 0 || subtotal.LessThanOrEqual(decimal.Zero) || redemptionRate.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	maxForOrder := subtotal.Div(redemptionRate).IntPart()
	if balance < maxForOrder {
		return balance
	}
	return maxForOrder
}

// Discount devuelve el valor monetario de los puntos canjeados: puntos × tasaCanje.
func Discount(points int64, redemptionRate decimal.Decimal) decimal.Decimal {
	if points <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(points).Mul(redemptionRate)
}

// PointsEarned devuelve los puntos acumulados por una venta:
// floor(montoFinal × tasaAcumulación). Nunca negativo.
func PointsEarned(finalAmount, earnRate decimal.Decimal) int64 {
	if finalAmount.LessThanOrEqual(decimal.Zero) || earnRate.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return finalAmount.Mul(earnRate).IntPart()
}
