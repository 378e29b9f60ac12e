package bookings

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"matha/db"
	"matha/models"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type receiptData struct {
	ReceiptNo string
	Amount    float64
	Status    string
	Lines     []string
}

// PrintReceipt handles GET /api/bookings/receipt/:kind/:id and renders a PDF
// receipt for one of the caller's own bookings. Another user's booking id is
// indistinguishable from an unknown one.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := utils.UserFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	kind := ps.ByName("kind")
	if kind != "seva" && kind != "room" {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown booking kind")
		return
	}

	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": oid, "user_email": user.Email}
	data, err := loadReceipt(ctx, kind, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	qrPayload := fmt.Sprintf("%s|%s|%s|%d", kind, oid.Hex(), data.ReceiptNo, time.Now().Unix())
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		log.Println("receipt qr error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Receipt No: %s", data.ReceiptNo))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Devotee: %s (%s)", user.Name, user.Email))
	pdf.Ln(8)
	for _, line := range data.Lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Amount: %.2f INR", data.Amount))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", data.Status))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", time.Now().UTC().Format("02 Jan 2006 15:04")))

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Present this receipt at the office counter.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("receipt pdf error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+data.ReceiptNo+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func loadReceipt(ctx context.Context, kind string, filter bson.M) (*receiptData, error) {
	if kind == "seva" {
		var b models.SevaBooking
		if err := db.SevaBookingCollection.FindOne(ctx, filter).Decode(&b); err != nil {
			return nil, err
		}
		return &receiptData{
			ReceiptNo: receiptNo(b.ReceiptNo, b.ID.Hex()),
			Amount:    b.Amount,
			Status:    b.Status,
			Lines: []string{
				fmt.Sprintf("Seva ID: %s", b.SevaID),
				fmt.Sprintf("Date: %s", utils.FormatDate(b.Date)),
				fmt.Sprintf("Persons: %d", b.Quantity),
			},
		}, nil
	}

	var b models.RoomBooking
	if err := db.RoomBookingCollection.FindOne(ctx, filter).Decode(&b); err != nil {
		return nil, err
	}
	return &receiptData{
		ReceiptNo: receiptNo(b.ReceiptNo, b.ID.Hex()),
		Amount:    b.Amount,
		Status:    b.Status,
		Lines: []string{
			fmt.Sprintf("Room ID: %s", b.RoomID),
			fmt.Sprintf("Check-in: %s", utils.FormatDate(b.CheckIn)),
			fmt.Sprintf("Check-out: %s", utils.FormatDate(b.CheckOut)),
			fmt.Sprintf("Guests: %d", b.Guests),
		},
	}, nil
}

// receiptNo falls back to the booking id for records written before receipt
// numbers were assigned at creation.
func receiptNo(no, fallback string) string {
	if no != "" {
		return no
	}
	return fallback
}
