package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaodan-next/internal/models"
)

func moneyFromFloat(v float64) models.Money {
	return models.NewMoneyFromFloat(v)
}

func validItems() []models.OrderItem {
	return []models.OrderItem{
		{Name: "阿莫西林胶囊", Qty: 2, Unit: "盒", Price: moneyFromFloat(35)},
		{Name: "布洛芬缓释胶囊", Qty: 1, Unit: "盒", Price: moneyFromFloat(20)},
	}
}

func TestComputeTotalSkipsUnqualifiedRows(t *testing.T) {
	svc := NewComposerService()
	items := []models.OrderItem{
		{Name: "阿莫西林胶囊", Qty: 2, Unit: "盒", Price: moneyFromFloat(35)},
		{Name: "   ", Qty: 3, Unit: "盒", Price: moneyFromFloat(100)},
		{Name: "布洛芬缓释胶囊", Qty: 0, Unit: "盒", Price: moneyFromFloat(100)},
		{Name: "感冒灵颗粒", Qty: -1, Unit: "盒", Price: moneyFromFloat(100)},
	}

	total := svc.ComputeTotal(items, moneyFromFloat(0), moneyFromFloat(0))
	if total.String() != "70.00" {
		t.Fatalf("total want 70.00 got %s", total.String())
	}
}

func TestComputeTotalAddsFeeAndSubtractsDiscount(t *testing.T) {
	svc := NewComposerService()
	items := []models.OrderItem{
		{Name: "阿莫西林胶囊", Qty: 2, Unit: "盒", Price: moneyFromFloat(10)},
	}

	total := svc.ComputeTotal(items, moneyFromFloat(50), moneyFromFloat(20))
	if total.String() != "50.00" {
		t.Fatalf("total want 50.00 got %s", total.String())
	}
}

func TestComputeTotalOrderIndependent(t *testing.T) {
	svc := NewComposerService()
	a := []models.OrderItem{
		{Name: "阿莫西林胶囊", Qty: 2, Unit: "盒", Price: moneyFromFloat(35)},
		{Name: "布洛芬缓释胶囊", Qty: 1.5, Unit: "盒", Price: moneyFromFloat(20.4)},
	}
	b := []models.OrderItem{a[1], a[0]}

	totalA := svc.ComputeTotal(a, moneyFromFloat(8), moneyFromFloat(3))
	totalB := svc.ComputeTotal(b, moneyFromFloat(8), moneyFromFloat(3))
	if totalA.String() != totalB.String() {
		t.Fatalf("total should not depend on row order: %s vs %s", totalA.String(), totalB.String())
	}
}

func TestComputeTotalClampsAtZero(t *testing.T) {
	svc := NewComposerService()
	items := []models.OrderItem{
		{Name: "阿莫西林胶囊", Qty: 1, Unit: "盒", Price: moneyFromFloat(10)},
	}

	total := svc.ComputeTotal(items, moneyFromFloat(0), moneyFromFloat(100))
	if total.String() != "0.00" {
		t.Fatalf("total want 0.00 got %s", total.String())
	}
}

func TestValidateForComposeFailureOrder(t *testing.T) {
	svc := NewComposerService()
	blankRows := []models.OrderItem{{Name: " ", Qty: 2, Price: moneyFromFloat(10)}}

	cases := []struct {
		name     string
		items    []models.OrderItem
		patient  string
		address  string
		phone    string
		expected error
	}{
		{"no valid items wins over everything", blankRows, "", "", "", ErrNoValidItems},
		{"patient next", validItems(), "", "", "", ErrPatientNameRequired},
		{"address next", validItems(), "张三", "  ", "", ErrShippingAddressRequired},
		{"phone last", validItems(), "张三", "北京市朝阳区幸福路1号", " ", ErrCustomerPhoneRequired},
	}
	for _, tc := range cases {
		err := svc.ValidateForCompose(tc.items, tc.patient, tc.address, tc.phone)
		if !errors.Is(err, tc.expected) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.expected, err)
		}
	}

	if err := svc.ValidateForCompose(validItems(), "张三", "北京市朝阳区幸福路1号", "0912345678"); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}

func TestComposeFullMessage(t *testing.T) {
	svc := NewComposerService()
	input := ComposeInput{
		Items: []models.OrderItem{
			{Name: "阿莫西林胶囊", Qty: 2, Unit: "盒", Price: moneyFromFloat(35)},
			{Name: "", Qty: 1, Unit: "盒", Price: moneyFromFloat(10)},
		},
		ShippingFee:     moneyFromFloat(50),
		Discount:        moneyFromFloat(20),
		PatientName:     "张三",
		CustomerPhone:   "0912345678",
		ShippingAddress: "北京市朝阳区幸福路1号",
		PaymentChannel:  "bank_transfer",
		PaymentStatus:   "unpaid",
	}

	message, total, err := svc.Compose(input, models.StoreProfile{ContactPhone: "010-12345678"})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if total.String() != "100.00" {
		t.Fatalf("total want 100.00 got %s", total.String())
	}

	expected := strings.Join([]string{
		"【药单确认】",
		"--------------------",
		"阿莫西林胶囊 ×2 盒（35.00/盒）",
		"--------------------",
		"小计：70.00",
		"运费：50.00",
		"优惠：-20.00",
		"合计：100.00",
		"--------------------",
		"患者：张三",
		"电话：0912345678",
		"地址：北京市朝阳区幸福路1号",
		"--------------------",
		"付款方式：银行转账",
		"付款状态：未付款",
		"请按合计金额转账，转账后回复凭证以便发货。",
		"如有疑问请联系门店：010-12345678",
	}, "\n")
	if message != expected {
		t.Fatalf("unexpected message:\n%s\n--- expected ---\n%s", message, expected)
	}
}

func TestComposeOmitsZeroFeeAndDiscount(t *testing.T) {
	svc := NewComposerService()
	input := ComposeInput{
		Items:           validItems(),
		PatientName:     "张三",
		CustomerPhone:   "0912345678",
		ShippingAddress: "北京市朝阳区幸福路1号",
	}

	message, _, err := svc.Compose(input, models.StoreProfile{})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if strings.Contains(message, "运费：") {
		t.Fatalf("zero fee line should be omitted:\n%s", message)
	}
	if strings.Contains(message, "优惠：") {
		t.Fatalf("zero discount line should be omitted:\n%s", message)
	}
	if strings.Contains(message, "付款方式：") {
		t.Fatalf("empty payment section should be omitted:\n%s", message)
	}
	if strings.Contains(message, "如有疑问请联系门店") {
		t.Fatalf("contact line should be omitted without phone:\n%s", message)
	}
}

func TestComposeClosingLines(t *testing.T) {
	svc := NewComposerService()
	base := ComposeInput{
		Items:           validItems(),
		PatientName:     "张三",
		CustomerPhone:   "0912345678",
		ShippingAddress: "北京市朝阳区幸福路1号",
	}

	cases := []struct {
		channel string
		status  string
		closing string
	}{
		{"bank_transfer", "unpaid", closingBankUnpaid},
		{"bank_transfer", "paid", closingBankPaid},
		{"cod", "unpaid", closingCOD},
		{"cod", "paid", closingCOD},
	}
	for _, tc := range cases {
		input := base
		input.PaymentChannel = tc.channel
		input.PaymentStatus = tc.status
		message, _, err := svc.Compose(input, models.StoreProfile{})
		if err != nil {
			t.Fatalf("compose %s/%s failed: %v", tc.channel, tc.status, err)
		}
		if !strings.Contains(message, tc.closing) {
			t.Fatalf("%s/%s should contain closing %q:\n%s", tc.channel, tc.status, tc.closing, message)
		}
	}
}

func TestComposeGroupsThousands(t *testing.T) {
	svc := NewComposerService()
	input := ComposeInput{
		Items: []models.OrderItem{
			{Name: "进口靶向药", Qty: 2, Unit: "盒", Price: moneyFromFloat(617.25)},
		},
		PatientName:     "张三",
		CustomerPhone:   "0912345678",
		ShippingAddress: "北京市朝阳区幸福路1号",
	}

	message, total, err := svc.Compose(input, models.StoreProfile{})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if total.Text() != "1,234.50" {
		t.Fatalf("grouped total want 1,234.50 got %s", total.Text())
	}
	if !strings.Contains(message, "合计：1,234.50") {
		t.Fatalf("message should contain grouped total:\n%s", message)
	}
}

func TestComposeValidationFailureReturnsError(t *testing.T) {
	svc := NewComposerService()
	input := ComposeInput{
		Items: []models.OrderItem{{Name: " ", Qty: 1, Price: moneyFromFloat(10)}},
	}

	message, _, err := svc.Compose(input, models.StoreProfile{})
	if !errors.Is(err, ErrNoValidItems) {
		t.Fatalf("want ErrNoValidItems got %v", err)
	}
	if message != "" {
		t.Fatalf("failed compose should return empty message, got %q", message)
	}
}
