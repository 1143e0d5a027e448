package sheet

import (
	"strings"
	"testing"
	"time"
)

const sampleSheet = `Thời gian,Tên khách hàng,Số lượng,Tổng tiền,Chi tiết,Link Facebook
21/07/2024,An,2,"1.500.000",Áo thun trắng,https://fb.com/an
22/07/2024,Bình,1,"2,000,000",Quần jean,
23/07/2024,,3,500000,,"https://fb.com/khach"`

func TestParse(t *testing.T) {
	orders := Parse(sampleSheet)
	if len(orders) != 3 {
		t.Fatalf("Parse() returned %d orders, want 3", len(orders))
	}

	first := orders[0]
	if first.ID != "1" {
		t.Errorf("first order ID = %q, want %q", first.ID, "1")
	}
	if first.CustomerName != "An" {
		t.Errorf("first order customer = %q, want %q", first.CustomerName, "An")
	}
	if first.Amount != 1500000 {
		t.Errorf("first order amount = %v, want 1500000", first.Amount)
	}
	if first.Quantity != 2 {
		t.Errorf("first order quantity = %d, want 2", first.Quantity)
	}
	if first.Date.Day() != 21 || first.Date.Month() != time.July {
		t.Errorf("first order date = %v, want July 21", first.Date)
	}
	if first.FacebookLink != "https://fb.com/an" {
		t.Errorf("first order facebook link = %q", first.FacebookLink)
	}

	if orders[1].Amount != 2000000 {
		t.Errorf("second order amount = %v, want 2000000", orders[1].Amount)
	}
	if orders[1].FacebookLink != "" {
		t.Errorf("second order facebook link = %q, want empty", orders[1].FacebookLink)
	}
}

func TestParseBlankCustomerPlaceholder(t *testing.T) {
	orders := Parse(sampleSheet)
	if got := orders[2].CustomerName; got != "Customer 3" {
		t.Errorf("blank customer name = %q, want %q", got, "Customer 3")
	}
}

func TestParseOriginalData(t *testing.T) {
	orders := Parse(sampleSheet)
	od := orders[0].OriginalData
	if od == nil {
		t.Fatal("original data not retained")
	}
	if got := od["tổng tiền"]; got != "1.500.000" {
		t.Errorf("original amount = %q, want %q", got, "1.500.000")
	}
	if got := od["thời gian"]; got != "21/07/2024" {
		t.Errorf("original date = %q, want %q", got, "21/07/2024")
	}
}

func TestParseTooFewLines(t *testing.T) {
	for _, body := range []string{"", "chỉ có header", "\n\n  \n"} {
		if got := Parse(body); len(got) != 0 {
			t.Errorf("Parse(%q) returned %d orders, want 0", body, len(got))
		}
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	body := "date,name,amount\n\n1/1/2024,An,100\n   \n2/1/2024,Bình,200\n"
	orders := Parse(body)
	if len(orders) != 2 {
		t.Fatalf("Parse() returned %d orders, want 2", len(orders))
	}
}

func TestParseCRLF(t *testing.T) {
	body := strings.ReplaceAll("date,name,amount\n1/1/2024,An,100\n", "\n", "\r\n")
	orders := Parse(body)
	if len(orders) != 1 {
		t.Fatalf("Parse() returned %d orders, want 1", len(orders))
	}
	if orders[0].Amount != 100 {
		t.Errorf("amount = %v, want 100", orders[0].Amount)
	}
}

func TestParseShortRow(t *testing.T) {
	body := "date,name,quantity,amount\n1/1/2024,An\n"
	orders := Parse(body)
	if len(orders) != 1 {
		t.Fatalf("Parse() returned %d orders, want 1", len(orders))
	}
	// Missing trailing cells degrade to defaults.
	if orders[0].Quantity != 1 {
		t.Errorf("quantity = %d, want default 1", orders[0].Quantity)
	}
	if orders[0].Amount != 0 {
		t.Errorf("amount = %v, want default 0", orders[0].Amount)
	}
}
