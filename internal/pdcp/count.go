package pdcp

// ComputeCount derives the 32-bit COUNT from an HFN/SN pair for a given
// sn_len: COUNT = (HFN << sn_len) | SN.
func ComputeCount(hfn, sn uint32, snLen int) uint32 {
	return (hfn << uint(snLen)) | sn
}
