package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ghostls/internal/contract"
)

func TestEstimateGasSumsOpcodeCosts(t *testing.T) {
	body := "fn withdraw(amount) {\n" +
		"  storage[balance] = storage[balance] - amount\n" +
		"  target.transfer(amount)\n" +
		"  emit Withdraw(amount)\n" +
		"}\n"

	cost := contract.EstimateGas(body)
	// 1 write (20000) + 1 net read (200) + 1 transfer (9000) + 1 event (375)
	assert.Equal(t, 20000+200+9000+375, cost)
}

func TestEstimateGasEmptyBody(t *testing.T) {
	assert.Equal(t, 0, contract.EstimateGas(""))
}

func TestEstimateGasHashAndSignature(t *testing.T) {
	body := "fn verify() {\n  h = keccak256(data)\n  ok = ecrecover(h, sig)\n}\n"
	assert.Equal(t, 30+3000, contract.EstimateGas(body))
}

func TestGasSwatchColorSeverityBands(t *testing.T) {
	cheap := contract.GasSwatchColor(100)
	expensive := contract.GasSwatchColor(100000)
	assert.NotEqual(t, cheap, expensive)
	assert.NotEmpty(t, cheap)
	assert.NotEmpty(t, expensive)
}

func TestEnclosingFunctionFindsBodyByLine(t *testing.T) {
	text := "fn deposit(amount) {\n" +
		"  storage[balance] = storage[balance] + amount\n" +
		"}\n" +
		"fn withdraw(amount) {\n" +
		"  storage[balance] = storage[balance] - amount\n" +
		"  target.transfer(amount)\n" +
		"}\n"

	start, end, ok := contract.EnclosingFunction(text, 4)
	assert.True(t, ok)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)
}

func TestEnclosingFunctionOutsideAnyBody(t *testing.T) {
	text := "fn deposit(amount) {\n  storage[balance] = amount\n}\n"
	// line 3 is the blank line after the function's closing brace.
	_, _, ok := contract.EnclosingFunction(text, 3)
	assert.False(t, ok)
}
