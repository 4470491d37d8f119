package money_test

import (
	"fmt"

	"github.com/centcount/money"
	"github.com/govalues/decimal"
)

func TaxAmount(priceAfterTax money.Money, taxRate decimal.Decimal) (money.Money, money.Money, error) {
	// Price
	one := taxRate.One()
	taxRate, err := taxRate.Add(one)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	priceBeforeTax, err := priceAfterTax.Quo(taxRate)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParseMoney(money.USD, "10")
	vatRate := decimal.MustParse("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %-6k         = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, a restaurant bill is split between guests and
// a tip is added to each share.
func Example_billSplitting() {
	bill := money.MustParseMoney(money.EUR, "100.00")
	tipRate := decimal.MustParse("0.125")

	shares, err := bill.Split(3)
	if err != nil {
		panic(err)
	}
	for i, share := range shares {
		tip, err := share.Mul(tipRate)
		if err != nil {
			panic(err)
		}
		total, err := share.Add(tip)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Guest %v: %v + %v = %v\n", i+1, share, tip, total)
	}

	// Output:
	// Guest 1: EUR 33.34 + EUR 4.17 = EUR 37.51
	// Guest 2: EUR 33.33 + EUR 4.17 = EUR 37.50
	// Guest 3: EUR 33.33 + EUR 4.17 = EUR 37.50
}

func ExampleNewMoney() {
	fmt.Println(money.NewMoney(money.EUR, 23, 10))
	fmt.Println(money.NewMoney(money.EUR, -1, -1))
	fmt.Println(money.NewMoney(money.EUR, 0, -19))
	// Output:
	// EUR 23.10 <nil>
	// EUR -1.01 <nil>
	// EUR -0.19 <nil>
}

func ExampleMustNewMoney() {
	fmt.Println(money.MustNewMoney(money.USD, 123, 45))
	// Output: USD 123.45
}

func ExampleParseMoney() {
	fmt.Println(money.ParseMoney(money.USD, "-12.3"))
	// Output: USD -12.30 <nil>
}

func ExampleMustParseMoney() {
	fmt.Println(money.MustParseMoney(money.USD, "-1.2"))
	// Output: USD -1.20
}

func ExampleNewMoneyFromMinorUnits() {
	fmt.Println(money.NewMoneyFromMinorUnits(money.USD, -1234))
	// Output: USD -12.34 <nil>
}

func ExampleNewMoneyFromDecimal() {
	fmt.Println(money.NewMoneyFromDecimal(money.USD, decimal.MustParse("1.005")))
	fmt.Println(money.NewMoneyFromDecimal(money.USD, decimal.MustParse("-1.005")))
	fmt.Println(money.NewMoneyFromDecimal(money.USD, decimal.MustParse("1.0049")))
	// Output:
	// USD 1.01 <nil>
	// USD -1.01 <nil>
	// USD 1.00 <nil>
}

func ExampleNewMoneyFromFloat64() {
	fmt.Println(money.NewMoneyFromFloat64(money.USD, 1.005))
	fmt.Println(money.NewMoneyFromFloat64(money.USD, -0.125))
	// Output:
	// USD 1.01 <nil>
	// USD -0.13 <nil>
}

func ExampleMoney_Curr() {
	m := money.MustParseMoney(money.USD, "15.6")
	fmt.Println(m.Curr())
	// Output: USD
}

func ExampleMoney_Decimal() {
	m := money.MustParseMoney(money.USD, "15.6")
	fmt.Println(m.Decimal())
	// Output: 15.60
}

func ExampleMoney_MinorUnits() {
	a := money.MustParseMoney(money.USD, "-1.23")
	b := money.MustParseMoney(money.USD, "5.6")
	fmt.Println(a.MinorUnits())
	fmt.Println(b.MinorUnits())
	// Output:
	// -123
	// 560
}

func ExampleMoney_Whole() {
	a := money.MustParseMoney(money.EUR, "-1.01")
	b := money.MustParseMoney(money.EUR, "-0.19")
	c := money.MustParseMoney(money.EUR, "23.10")
	fmt.Println(a.Whole(), a.Frac(), a.IsNegFrac())
	fmt.Println(b.Whole(), b.Frac(), b.IsNegFrac())
	fmt.Println(c.Whole(), c.Frac(), c.IsNegFrac())
	// Output:
	// -1 -1 false
	// 0 -19 true
	// 23 10 false
}

func ExampleMoney_Add() {
	a := money.MustParseMoney(money.EUR, "-1.20")
	b := money.MustParseMoney(money.EUR, "1.01")
	c := money.MustParseMoney(money.USD, "1.01")
	fmt.Println(a.Add(b))
	_, err := a.Add(c)
	fmt.Println(err)
	// Output:
	// EUR -0.19 <nil>
	// computing [EUR -1.20 + USD 1.01]: incompatible currency: EUR and USD
}

func ExampleMoney_Sub() {
	a := money.MustParseMoney(money.EUR, "-5.09")
	b := money.MustParseMoney(money.EUR, "-6.01")
	fmt.Println(a.Sub(b))
	// Output: EUR 0.92 <nil>
}

func ExampleMoney_Mul() {
	a := money.MustParseMoney(money.USD, "10.00")
	b := money.MustParseMoney(money.USD, "-0.01")
	fmt.Println(a.Mul(decimal.MustParse("0.3335")))
	fmt.Println(b.Mul(decimal.MustParse("0.5")))
	// Output:
	// USD 3.34 <nil>
	// USD -0.01 <nil>
}

func ExampleMoney_MulFloat64() {
	a := money.MustParseMoney(money.USD, "1.15")
	fmt.Println(a.MulFloat64(3))
	// Output: USD 3.45 <nil>
}

func ExampleMoney_Quo() {
	a := money.MustParseMoney(money.USD, "2.00")
	fmt.Println(a.Quo(decimal.MustParse("3")))
	fmt.Println(a.Quo(decimal.MustParse("-3")))
	_, err := a.Quo(decimal.Zero)
	fmt.Println(err)
	// Output:
	// USD 0.67 <nil>
	// USD -0.67 <nil>
	// computing [USD 2.00 / 0]: division by zero
}

func ExampleMoney_QuoFloat64() {
	a := money.MustParseMoney(money.USD, "1.00")
	fmt.Println(a.QuoFloat64(8))
	// Output: USD 0.13 <nil>
}

func ExampleMoney_Split() {
	a := money.MustParseMoney(money.USD, "1.01")
	fmt.Println(a.Split(5))
	fmt.Println(a.Split(4))
	fmt.Println(a.Split(3))
	fmt.Println(a.Split(2))
	fmt.Println(a.Split(1))
	// Output:
	// [USD 0.21 USD 0.20 USD 0.20 USD 0.20 USD 0.20] <nil>
	// [USD 0.26 USD 0.25 USD 0.25 USD 0.25] <nil>
	// [USD 0.34 USD 0.34 USD 0.33] <nil>
	// [USD 0.51 USD 0.50] <nil>
	// [USD 1.01] <nil>
}

func ExampleMoney_Cmp() {
	a := money.MustParseMoney(money.USD, "-23")
	b := money.MustParseMoney(money.USD, "5.67")
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Cmp(a))
	fmt.Println(b.Cmp(a))
	// Output:
	// -1 <nil>
	// 0 <nil>
	// 1 <nil>
}

func ExampleMoney_Equal() {
	a := money.MustParseMoney(money.USD, "10.1")
	b := money.MustParseMoney(money.USD, "10.10")
	c := money.MustParseMoney(money.EUR, "10.10")
	fmt.Println(a.Equal(b))
	fmt.Println(a.Equal(c))
	// Output:
	// true
	// false
}

func ExampleMoney_SameCurr() {
	a := money.MustParseMoney(money.USD, "23")
	b := money.MustParseMoney(money.USD, "-5.67")
	c := money.MustParseMoney(money.EUR, "1")
	fmt.Println(a.SameCurr(b))
	fmt.Println(a.SameCurr(c))
	// Output:
	// true
	// false
}

func ExampleMoney_Format() {
	m := money.MustParseMoney(money.USD, "-123.45")
	fmt.Printf("%v\n", m)
	fmt.Printf("%f\n", m)
	fmt.Printf("%d\n", m)
	fmt.Printf("%c\n", m)
	// Output:
	// USD -123.45
	// -123.45
	// -12345
	// USD
}

func ExampleMoney_String() {
	m := money.MustParseMoney(money.EUR, "-0.19")
	fmt.Println(m.String())
	// Output: EUR -0.19
}

func ExampleMoney_Value() {
	m := money.MustParseMoney(money.EUR, "3")
	fmt.Println(m.Value())
	// Output: 3.00
}

func ExampleMoney_Abs() {
	m := money.MustParseMoney(money.USD, "-15.67")
	fmt.Println(m.Abs())
	// Output: USD 15.67
}

func ExampleMoney_Neg() {
	m := money.MustParseMoney(money.USD, "15.67")
	fmt.Println(m.Neg())
	// Output: USD -15.67
}

func ExampleMoney_Sign() {
	a := money.MustParseMoney(money.USD, "-23")
	b := money.MustParseMoney(money.USD, "0")
	c := money.MustParseMoney(money.USD, "23")
	fmt.Println(a.Sign())
	fmt.Println(b.Sign())
	fmt.Println(c.Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleMoney_Zero() {
	m := money.MustParseMoney(money.PHP, "23.56")
	fmt.Println(m.Zero())
	// Output: PHP 0.00
}

func ExampleMoney_UnmarshalText() {
	var m money.Money
	err := m.UnmarshalText([]byte("eur -1.2"))
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: EUR -1.20
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("USD"))
	fmt.Println(money.ParseCurr("usd"))
	fmt.Println(money.ParseCurr("840"))
	// Output:
	// USD <nil>
	// USD <nil>
	// USD <nil>
}

func ExampleMustParseCurr() {
	fmt.Println(money.MustParseCurr("USD"))
	// Output: USD
}

func ExampleCurrency_Code() {
	fmt.Println(money.EUR.Code())
	fmt.Println(money.PHP.Code())
	// Output:
	// EUR
	// PHP
}

func ExampleCurrency_Num() {
	fmt.Println(money.EUR.Num())
	fmt.Println(money.AUD.Num())
	// Output:
	// 978
	// 036
}

func ExampleCurrency_Scale() {
	fmt.Println(money.USD.Scale())
	// Output: 2
}

func ExampleCurrency_Format() {
	fmt.Printf("%c|%5v|%q\n", money.USD, money.EUR, money.PHP)
	// Output: USD|  EUR|"PHP"
}

func ParseStripe(currency string, amount int64) (money.Money, error) {
	c, err := money.ParseCurr(currency)
	if err != nil {
		return money.Money{}, err
	}
	return money.NewMoneyFromMinorUnits(c, amount)
}

// This is an example of how to a parse a monetary amount
// formatted according to Stripe API specification.
func ExampleNewMoneyFromMinorUnits_stripe() {
	m, err := ParseStripe("usd", -1234)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: USD -12.34
}
