package payroll

import "github.com/lotus-wellness/payroll-backend-go/internal/domain/payroll"

// CalculateAcupunctureReport computes the monthly commission breakdown.
// Unlike the half-month payrolls this always iterates days 1-31; days
// past the end of a short month have no matching row and contribute
// nothing.
//
// Monthly money figures multiply each percentage against the raw
// monthly sum (sum first, multiply once), and the cheque is the sum of
// the per-day totals. The two agree mathematically but not always
// bit-for-bit, and both orderings are preserved from the legacy system
// for regression parity.
func CalculateAcupunctureReport(r payroll.AcupunctureReport) payroll.ReportBreakdown {
	b := payroll.ReportBreakdown{
		Days: make([]payroll.ReportDay, 0, 31),
	}

	for day := 1; day <= 31; day++ {
		d := payroll.ReportDay{Day: day}
		if row := findRow31(r.Data, day); row != nil {
			d.Acupuncture = row.Acupuncture
			d.Massage = row.Massage
			d.Insurance = row.Insurance
			d.NonAcupuncturistInsurance = row.NonAcupuncturistInsurance

			d.Total = row.Acupuncture*r.AcupuncturePercentage +
				row.Massage*r.MassagePercentage -
				row.Insurance*r.InsurancePercentage -
				row.NonAcupuncturistInsurance*r.NonAcupuncturistInsurancePercentage
		}
		b.Days = append(b.Days, d)
	}

	for _, d := range b.Days {
		b.TotalAcupuncture += d.Acupuncture
		b.TotalMassage += d.Massage
		b.TotalInsurance += d.Insurance
		b.TotalNonAcupuncturistInsurance += d.NonAcupuncturistInsurance
		b.Cheque += d.Total
	}

	b.AcupunctureMoney = b.TotalAcupuncture * r.AcupuncturePercentage
	b.MassageMoney = b.TotalMassage * r.MassagePercentage
	b.InsuranceMoney = b.TotalInsurance * r.InsurancePercentage
	b.NonAcupuncturistInsuranceMoney = b.TotalNonAcupuncturistInsurance * r.NonAcupuncturistInsurancePercentage

	return b
}

func findRow31(rows []payroll.ReportRow, day int) *payroll.ReportRow {
	for i := range rows {
		if rows[i].Date.Day() == day {
			return &rows[i]
		}
	}
	return nil
}
