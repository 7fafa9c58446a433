package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ghostls/internal/contract"
)

func TestDefaultAnalyzerUnclosedBrace(t *testing.T) {
	issues := contract.DefaultAnalyzer{}.Analyze("fn withdraw() {\n  storage[balance] = 0\n")
	assert.NotEmpty(t, issues)
}

func TestDefaultAnalyzerUnmatchedClosingBrace(t *testing.T) {
	issues := contract.DefaultAnalyzer{}.Analyze("fn f() {}\n}\n")
	var codes []string
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	assert.Contains(t, codes, "unmatched-brace")
}

func TestDefaultAnalyzerBalanced(t *testing.T) {
	issues := contract.DefaultAnalyzer{}.Analyze("fn f() {\n  return 1\n}\n")
	assert.Empty(t, issues)
}

func TestReentrancyLint(t *testing.T) {
	src := "fn withdraw() {\n  target.call(amount)\n  storage[balance] = 0\n}\n"
	issues := contract.Lints(src)
	assert.True(t, hasCode(issues, "reentrancy"))
}

func TestRepeatedStorageReadLint(t *testing.T) {
	src := "fn f() {\n  a = storage[x] + storage[x]\n  b = storage[x]\n}\n"
	issues := contract.Lints(src)
	assert.True(t, hasCode(issues, "cache-storage-read"))
}

func TestMissingAccessGuardLint(t *testing.T) {
	src := "fn setOwner(addr) {\n  storage[owner] = addr\n}\n"
	issues := contract.Lints(src)
	assert.True(t, hasCode(issues, "missing-access-guard"))
}

func TestMissingAccessGuardLintSatisfiedByRequire(t *testing.T) {
	src := "fn setOwner(addr) {\n  require(msg.sender == owner)\n  storage[owner] = addr\n}\n"
	issues := contract.Lints(src)
	assert.False(t, hasCode(issues, "missing-access-guard"))
}

func TestUncheckedArithmeticLint(t *testing.T) {
	src := "fn f() {\n  balance = balance + amount\n}\n"
	issues := contract.Lints(src)
	assert.True(t, hasCode(issues, "unchecked-arithmetic"))
}

func TestTimeOfBlockLint(t *testing.T) {
	src := "fn f() {\n  if block.timestamp > deadline {\n    return 1\n  }\n}\n"
	issues := contract.Lints(src)
	assert.True(t, hasCode(issues, "time-of-block-comparison"))
}

func hasCode(issues []contract.Issue, code string) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}
	return false
}
