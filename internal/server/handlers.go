package server

import (
	"errors"
	"net/http"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/pkg/kuznechik"
)

type encryptQuery struct {
	Blk string `schema:"blk" validate:"required,max=32,hexchars"`
	Key string `schema:"key" validate:"required,max=64,hexchars"`
}

type decryptQuery struct {
	Blk string `schema:"blk" validate:"required,len=32,hexchars"`
	Key string `schema:"key" validate:"required,max=64,hexchars"`
}

type strQuery struct {
	DataStr string `schema:"data_str" validate:"max=25"`
}

type hexQuery struct {
	DataHex string `schema:"data_hex" validate:"required,max=100,hexchars"`
}

const (
	msgOddBlock    = "The block of data to be encrypted must have an even number of characters."
	msgOddEncKey   = "The encryption key must have an even number of characters."
	msgOddDecKey   = "The decryption key must have an even number of characters."
	msgOddHex      = "Hex string must have an even number of characters."
	msgInvalidUTF8 = "The input hex string could not be decoded into valid UTF-8 encoded text."
)

func (s *Server) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"title": s.cfg.Title, "version": s.version})
}

func (s *Server) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (s *Server) encrypt(w http.ResponseWriter, r *http.Request) {
	var q encryptQuery
	if !s.bind(w, r, &q) {
		return
	}

	if len(q.Blk)%2 != 0 {
		writeDetail(w, http.StatusBadRequest, msgOddBlock)

		return
	}

	if len(q.Key)%2 != 0 {
		writeDetail(w, http.StatusBadRequest, msgOddEncKey)

		return
	}

	blk, err := codec.ParseBlock(q.Blk, s.order)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return
	}

	key, err := codec.ParseKey(q.Key, s.order)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, codec.FormatBlock(kuznechik.EncryptBlock(blk, key), s.order))
}

func (s *Server) decrypt(w http.ResponseWriter, r *http.Request) {
	var q decryptQuery
	if !s.bind(w, r, &q) {
		return
	}

	if len(q.Key)%2 != 0 {
		writeDetail(w, http.StatusBadRequest, msgOddDecKey)

		return
	}

	blk, err := codec.ParseFullBlock(q.Blk, s.order)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return
	}

	key, err := codec.ParseKey(q.Key, s.order)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return
	}

	plain := codec.FormatBlock(kuznechik.DecryptBlock(blk, key), s.order)

	writeJSON(w, http.StatusOK, codec.TrimPadding(plain))
}

func (s *Server) strToHex(w http.ResponseWriter, r *http.Request) {
	// An empty string is valid input, so only an absent key is an error.
	if !r.URL.Query().Has("data_str") {
		writeFieldErrors(w, []fieldError{{Loc: []string{"query", "data_str"}, Msg: "Field required", Type: "missing"}})

		return
	}

	var q strQuery
	if !s.bind(w, r, &q) {
		return
	}

	out, err := codec.StrToHex(q.DataStr)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"data_hex": out})
}

func (s *Server) hexToStr(w http.ResponseWriter, r *http.Request) {
	var q hexQuery
	if !s.bind(w, r, &q) {
		return
	}

	out, err := codec.HexToStr(q.DataHex)

	switch {
	case errors.Is(err, codec.ErrOddLength):
		writeDetail(w, http.StatusBadRequest, msgOddHex)
	case errors.Is(err, codec.ErrInvalidUTF8):
		writeDetail(w, http.StatusBadRequest, msgInvalidUTF8)
	case err != nil:
		writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"data_str": out})
	}
}

func (s *Server) hexInfo(w http.ResponseWriter, r *http.Request) {
	var q hexQuery
	if !s.bind(w, r, &q) {
		return
	}

	info, err := codec.HexInfo(q.DataHex)

	switch {
	case errors.Is(err, codec.ErrOddLength):
		writeDetail(w, http.StatusBadRequest, msgOddHex)
	case err != nil:
		writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusOK, info)
	}
}
