// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

const (
	DefaultCVCLength = 3
	// MaxCVCLength caps CVC input while the card type is still unknown.
	MaxCVCLength = 4
	// GenericMaxLength caps card number input while the card type is unknown.
	GenericMaxLength = 19
)

// Type ids of the built-in networks.
const (
	Visa       = "visa"
	Mastercard = "mastercard"
	Amex       = "amex"
	DinersClub = "dinersclub"
	Discover   = "discover"
	JCB        = "jcb"
	UnionPay   = "unionpay"
	Maestro    = "maestro"
	Elo        = "elo"
	Hipercard  = "hipercard"
	Troy       = "troy"
)

// builtin returns the default definitions in detection order. Elo's six
// digit carve-outs sit ahead of Visa, Discover and UnionPay; Discover's 6011
// precedes Hipercard's 60; Hipercard's 3841xx precede Diners' 38.
// Most specific first, so "401178..." detects as Elo rather than Visa.
func builtin() []CardType {
	return []CardType{
		New("Elo", Elo, DefaultGrouping, Pattern{
			Lit("401178"), Lit("401179"),
			Lit("431274"), Lit("438935"),
			Lit("451416"), Lit("457393"), Lit("457631"), Lit("457632"),
			Lit("504175"), Lit("506699"), Range("506700", "506779"), Lit("509000"),
			Lit("627780"),
			Lit("636297"), Lit("636368"),
			Range("650030", "650033"), Range("650035", "650039"),
			Range("650040", "650049"),
			Range("650050", "650051"),
			Range("650405", "650409"), Range("650430", "650439"),
			Range("650485", "650489"), Range("650490", "650499"),
			Range("650500", "650538"),
			Lit("650541"),
			Lit("650700"), Lit("650720"), Lit("650901"),
			Range("650920", "650978"),
			Lit("651652"), Lit("655000"), Lit("655021"),
		}, []int{16}, &Code{Name: "CVE", Length: 3}),

		New("Visa", Visa, DefaultGrouping, Pattern{Lit("4")},
			[]int{16, 18, 19}, &Code{Name: "CVV", Length: 3}),

		New("Mastercard", Mastercard, DefaultGrouping, Pattern{
			Range("51", "55"), Range("2221", "2720"), Lit("677189"),
		}, []int{16}, &Code{Name: "CVC", Length: 3}),

		New("American Express", Amex, Grouping{Sizes: []int{4, 6, 5}},
			Pattern{Lit("34"), Lit("37")},
			[]int{15}, &Code{Name: "CID", Length: 4}),

		New("Discover", Discover, DefaultGrouping, Pattern{
			Lit("6011"), Lit("65"), Range("644", "649"), Lit("622"),
		}, []int{16, 19}, &Code{Name: "CID", Length: 3}),

		New("Hipercard", Hipercard, DefaultGrouping, Pattern{
			Lit("384100"), Lit("384140"), Lit("384160"),
			Lit("606282"), Lit("637095"), Lit("637568"),
			Lit("60"),
		}, []int{14, 15, 16, 17, 18, 19}, &Code{Name: "CVC", Length: 4}),

		New("Diners Club", DinersClub, Grouping{Sizes: []int{4, 6}},
			Pattern{Lit("36"), Lit("38"), Range("300", "305")},
			[]int{14, 16, 19}, &Code{Name: "CVV", Length: 3}),

		New("JCB", JCB, DefaultGrouping, Pattern{Lit("35")},
			[]int{16, 17, 18, 19}, &Code{Name: "CVV", Length: 3}),

		New("UnionPay", UnionPay, DefaultGrouping, Pattern{Lit("62")},
			[]int{14, 15, 16, 17, 18, 19}, &Code{Name: "CVN", Length: 3}),

		New("Maestro", Maestro, DefaultGrouping, Pattern{
			Lit("5018"), Lit("5020"), Lit("5038"), Lit("6304"),
			Lit("6703"), Lit("6708"), Lit("6759"), Range("6761", "6763"),
		}, []int{12, 13, 14, 15, 16, 17, 18, 19}, &Code{Name: "CVC", Length: 3}),

		New("Troy", Troy, DefaultGrouping, Pattern{Lit("9792")},
			[]int{16}, &Code{Name: "CVV", Length: 3}),
	}
}
