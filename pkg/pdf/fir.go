package pdf

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// FIRData is the ordered content the incident report renders: header,
// tourist identity, SOS summary, location trail, audio links, attestation.
type FIRData struct {
	EventID     string
	Requester   string
	Station     string
	GeneratedAt string

	Tourist   TouristBlock
	SOS       SOSBlock
	Trail     []TrailRow
	AudioURLs []string
}

type TouristBlock struct {
	Username  string
	FullName  string
	Age       string
	Phone     string
	Aadhaar   string
	Passport  string
	EntryDate string
	LeaveDate string
}

type SOSBlock struct {
	CreatedAt   string
	Lat         *float64
	Lon         *float64
	Description string
}

type TrailRow struct {
	Seq       int
	Timestamp string
	Lat       string
	Lon       string
	Accuracy  string
}

// RenderFIR produces the fixed-layout, paginated report document.
func RenderFIR(d FIRData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 10, "FIRST INFORMATION REPORT", "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 6, "Event ID: "+d.EventID, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, "Generated by "+d.Requester+" at "+d.GeneratedAt, "", 1, "C", false, 0, "")
	doc.Ln(4)

	sectionTitle(doc, "Tourist Identity")
	fieldRow(doc, "Username", d.Tourist.Username)
	fieldRow(doc, "Full name", d.Tourist.FullName)
	fieldRow(doc, "Age", d.Tourist.Age)
	fieldRow(doc, "Phone", d.Tourist.Phone)
	fieldRow(doc, "Aadhaar number", d.Tourist.Aadhaar)
	fieldRow(doc, "Passport ID", d.Tourist.Passport)
	fieldRow(doc, "Entry date", d.Tourist.EntryDate)
	fieldRow(doc, "Leave date", d.Tourist.LeaveDate)
	doc.Ln(4)

	sectionTitle(doc, "SOS Summary")
	fieldRow(doc, "Raised at", d.SOS.CreatedAt)
	if d.SOS.Lat != nil && d.SOS.Lon != nil {
		fieldRow(doc, "Position", fmtCoord(*d.SOS.Lat)+", "+fmtCoord(*d.SOS.Lon))
	} else {
		fieldRow(doc, "Position", "not reported")
	}
	if d.SOS.Description != "" {
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(40, 6, "Description", "", 0, "L", false, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.MultiCell(0, 6, d.SOS.Description, "", "L", false)
	}
	doc.Ln(4)

	sectionTitle(doc, "Location Trail (10 minutes before SOS)")
	doc.SetFont("Arial", "B", 9)
	doc.CellFormat(12, 6, "#", "1", 0, "C", false, 0, "")
	doc.CellFormat(62, 6, "Timestamp", "1", 0, "C", false, 0, "")
	doc.CellFormat(38, 6, "Latitude", "1", 0, "C", false, 0, "")
	doc.CellFormat(38, 6, "Longitude", "1", 0, "C", false, 0, "")
	doc.CellFormat(30, 6, "Accuracy (m)", "1", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 9)
	for _, row := range d.Trail {
		doc.CellFormat(12, 6, strconv.Itoa(row.Seq), "1", 0, "C", false, 0, "")
		doc.CellFormat(62, 6, row.Timestamp, "1", 0, "L", false, 0, "")
		doc.CellFormat(38, 6, row.Lat, "1", 0, "R", false, 0, "")
		doc.CellFormat(38, 6, row.Lon, "1", 0, "R", false, 0, "")
		doc.CellFormat(30, 6, row.Accuracy, "1", 1, "R", false, 0, "")
	}
	if len(d.Trail) == 0 {
		doc.CellFormat(180, 6, "no location data in window", "1", 1, "C", false, 0, "")
	}
	doc.Ln(4)

	if len(d.AudioURLs) > 0 {
		sectionTitle(doc, "Audio Recordings")
		doc.SetFont("Arial", "", 9)
		for _, url := range d.AudioURLs {
			doc.CellFormat(0, 6, url, "", 1, "L", false, 0, "")
		}
		doc.Ln(4)
	}

	sectionTitle(doc, "Attestation")
	doc.SetFont("Arial", "", 10)
	station := d.Station
	if station == "" {
		station = "station not on record"
	}
	doc.CellFormat(0, 6, "Reporting officer: "+d.Requester+" ("+station+")", "", 1, "L", false, 0, "")
	doc.Ln(10)
	doc.CellFormat(0, 6, "Signature: _______________________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	doc.Ln(1)
}

func fieldRow(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Arial", "B", 10)
	doc.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
