package usecase

import "github.com/gaze-network/rainbow-minter/modules/metadata"

func (u *Usecase) GetFactory(optionID uint64) metadata.Factory {
	return metadata.NewFactory(optionID, u.config.FactoryImageURL, u.config.ExternalURL)
}
