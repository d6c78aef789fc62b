package number_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/govalues/number"
	"github.com/govalues/number/backend/fixeddec"
)

func evaluate(input string) (number.Value, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return number.Value{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return number.Value{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return number.Value{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]number.Value, error) {
	stack := make([]number.Value, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if op, opErr := number.ParseOp(token); opErr == nil {
			stack, err = processOperator(stack, op)
		} else {
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []number.Value, op number.Op) ([]number.Value, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	result, err := left.Apply(op, right)
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func processOperand(stack []number.Value, token string) ([]number.Value, error) {
	v, err := number.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, v), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in postfix (or reverse Polish) notation.
// The calculator can handle basic arithmetic operations such as addition,
// subtraction, multiplication, and division.
func Example_postfixCalculator() {
	v, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	_, err = evaluate("/ 1 - 2 2")
	fmt.Println(err)
	// Output:
	// 57.9
	// processing tokens: processing token "/": computing [1 / 0]: division by zero
}

func ExampleParse() {
	v, err := number.Parse(" +007.50 ")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	fmt.Println(v.IsInt())
	_, err = number.Parse("1e5")
	fmt.Println(err)
	// Output:
	// 007.5
	// false
	// parsing "1e5": invalid number
}

func ExampleOf() {
	for _, x := range []any{0.15, 42, "-3.", number.Str("1.50"), true} {
		v, err := number.Of(x)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(v)
	}
	// Output:
	// 0.15
	// 42
	// -3
	// 1.5
	// converting bool: unsupported type
}

func ExampleValue_Quo() {
	v := number.MustParse("1")
	fmt.Println(v.Quo(number.Int(3)))
	fmt.Println(v.Quo(number.Int(1), number.Int(2), number.Int(3), number.Int(4), number.Int(5)))
	fmt.Println(v.Quo(number.Int(0)))
	// Output:
	// 0.33333333333333 <nil>
	// 0.00833333333333 <nil>
	// 0 computing [1 / 0]: division by zero
}

func ExampleValue_Mul() {
	fmt.Println(number.MustParse("0").Mul(number.Int(-1)))
	fmt.Println(number.MustParse("-0").Mul(number.Int(-1)))
	fmt.Println(number.MustParse("1.5").Mul(number.Float(2.5), number.Str("2")))
	// Output:
	// -0 <nil>
	// 0 <nil>
	// 7.5 <nil>
}

func ExampleSum() {
	fmt.Println(number.Sum())
	fmt.Println(number.Sum(number.Int(1), number.Int(2), number.Float(3.5), number.Str("15")))
	// Output:
	// 0 <nil>
	// 21.5 <nil>
}

func ExampleMean() {
	fmt.Println(number.Mean())
	fmt.Println(number.Mean(number.Int(1), number.Int(2), number.Int(3), number.Int(4), number.Int(5)))
	// Output:
	// 0 <nil>
	// 3 <nil>
}

func ExampleValue_Equal() {
	v := number.MustParse("0")
	fmt.Println(v.Equal(number.Str("0.0")))
	fmt.Println(v.Equal(number.Str("-0")))
	fmt.Println(v.Equal(number.Str("0.000000000000001")))
	fmt.Println(v.Equal(number.Str("0.00000000000001")))
	// Output:
	// true <nil>
	// true <nil>
	// true <nil>
	// false <nil>
}

func ExampleValue_Abs() {
	fmt.Println(number.MustParse("-0.222561").Abs())
	fmt.Println(number.MustParse("-0").Abs())
	// Output:
	// 0.222561 <nil>
	// 0 <nil>
}

func ExampleValue_NegAbs() {
	fmt.Println(number.MustParse("0").NegAbs())
	fmt.Println(number.MustParse("15").NegAbs())
	// Output:
	// -0 <nil>
	// -15 <nil>
}

func ExampleValue_IsNeg() {
	fmt.Println(number.MustParse("-0").IsNeg())
	fmt.Println(number.MustParse("0").IsNeg())
	// Output:
	// true
	// false
}

func ExampleNewContext() {
	ctx := number.NewContext(fixeddec.New(2))
	v, err := ctx.Parse("2")
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Quo(number.Int(3)))
	fmt.Println(ctx.Mean(number.Int(1), number.Int(2)))
	// Output:
	// 0.66 <nil>
	// 1.5 <nil>
}

func ExampleValue_MarshalText() {
	type Payment struct {
		Amount number.Value `json:"amount"`
	}
	b, err := json.Marshal(Payment{Amount: number.MustParse("10.50")})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	var p Payment
	if err := json.Unmarshal([]byte(`{"amount":"-0.25"}`), &p); err != nil {
		panic(err)
	}
	fmt.Println(p.Amount)
	// Output:
	// {"amount":"10.5"}
	// -0.25
}
